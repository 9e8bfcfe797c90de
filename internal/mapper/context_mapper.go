package mapper

import (
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/model"
)

type ContextMapper struct{}

func NewContextMapper() *ContextMapper {
	return &ContextMapper{}
}

func (m *ContextMapper) ToEntity(c *model.ConversationContext) *entity.ConversationContext {
	if c == nil {
		return nil
	}

	return &entity.ConversationContext{
		SessionId:    c.SessionId,
		Industry:     derefOrEmpty(c.Industry),
		CompanySize:  derefOrEmpty(c.CompanySize),
		PainPoints:   jsonToStrings(c.PainPoints),
		Goals:        jsonToStrings(c.Goals),
		CurrentTools: jsonToStrings(c.CurrentTools),
		BudgetRange:  derefOrEmpty(c.BudgetRange),
		Timeline:     derefOrEmpty(c.Timeline),
		Stakeholders: jsonToStrings(c.Stakeholders),
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ContextMapper) ToModel(c *entity.ConversationContext) *model.ConversationContext {
	if c == nil {
		return nil
	}

	return &model.ConversationContext{
		SessionId:    c.SessionId,
		Industry:     strOrNil(c.Industry),
		CompanySize:  strOrNil(c.CompanySize),
		PainPoints:   stringsToJSON(c.PainPoints),
		Goals:        stringsToJSON(c.Goals),
		CurrentTools: stringsToJSON(c.CurrentTools),
		BudgetRange:  strOrNil(c.BudgetRange),
		Timeline:     strOrNil(c.Timeline),
		Stakeholders: stringsToJSON(c.Stakeholders),
		UpdatedAt:    c.UpdatedAt,
	}
}
