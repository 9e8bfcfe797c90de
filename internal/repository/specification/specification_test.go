package specification

import (
	"strings"
	"testing"

	"daeda-site-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func buildSQL(t *testing.T, spec Specification) (string, []interface{}) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var out []*model.ChatMessage
	tx := spec.Apply(db.Model(&model.ChatMessage{})).Find(&out)
	if tx.Error != nil {
		t.Fatalf("build statement: %v", tx.Error)
	}
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestByChatSessionID(t *testing.T) {
	sessionId := uuid.New()
	sql, vars := buildSQL(t, ByChatSessionID{ChatSessionID: sessionId})

	if !strings.Contains(sql, "chat_session_id = ?") {
		t.Errorf("sql = %q, want a chat_session_id filter", sql)
	}
	found := false
	for _, v := range vars {
		if v == sessionId {
			found = true
		}
	}
	if !found {
		t.Errorf("vars = %v, want the session id bound", vars)
	}
}

func TestByStatus(t *testing.T) {
	sql, vars := buildSQL(t, ByStatus{Status: "active"})

	if !strings.Contains(sql, "status = ?") {
		t.Errorf("sql = %q, want a status filter", sql)
	}
	if len(vars) == 0 || vars[len(vars)-1] != "active" {
		t.Errorf("vars = %v, want %q bound", vars, "active")
	}
}

func TestOrderByDirection(t *testing.T) {
	tests := []struct {
		name string
		spec OrderBy
		want string
	}{
		{name: "ascending", spec: OrderBy{Field: "created_at"}, want: "created_at ASC"},
		{name: "descending", spec: OrderBy{Field: "use_count", Desc: true}, want: "use_count DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := buildSQL(t, tt.spec)
			if !strings.Contains(sql, tt.want) {
				t.Errorf("sql = %q, want it to contain %q", sql, tt.want)
			}
		})
	}
}

func TestPaginationAndLimit(t *testing.T) {
	sql, vars := buildSQL(t, Pagination{Limit: 20, Offset: 40})
	if !strings.Contains(sql, "LIMIT") || !strings.Contains(sql, "OFFSET") {
		t.Errorf("sql = %q, want limit and offset clauses (vars %v)", sql, vars)
	}

	sql, _ = buildSQL(t, Limit{Limit: 3})
	if !strings.Contains(sql, "LIMIT") {
		t.Errorf("sql = %q, want a limit clause", sql)
	}
	if strings.Contains(sql, "OFFSET") {
		t.Errorf("sql = %q, a bare limit must not add an offset", sql)
	}
}

func TestFilter(t *testing.T) {
	sql, vars := buildSQL(t, Filter("role", "model"))

	if !strings.Contains(sql, "role = ?") {
		t.Errorf("sql = %q, want a role filter", sql)
	}
	if len(vars) == 0 || vars[len(vars)-1] != "model" {
		t.Errorf("vars = %v, want %q bound", vars, "model")
	}
}
