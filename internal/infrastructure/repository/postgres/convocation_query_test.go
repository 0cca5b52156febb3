package postgres

import (
	"strings"
	"testing"

	"github.com/canterahq/cantera/internal/domain/convocation"
)

func TestListByMatchQuery_TenantBoundJoin(t *testing.T) {
	query, args, err := listByMatchQuery("club-la-cantera", "lc-match-01", nil)
	if err != nil {
		t.Fatalf("build query failed: %v", err)
	}

	if !strings.Contains(query, "JOIN players p ON p.id = mc.player_id AND p.tenant_id = mc.tenant_id") {
		t.Fatalf("player join is not tenant bound: %s", query)
	}
	if !strings.Contains(query, "ORDER BY mc.is_starter DESC, p.last_name, p.first_name") {
		t.Fatalf("unexpected ordering: %s", query)
	}
	if len(args) != 2 || args[0] != "club-la-cantera" || args[1] != "lc-match-01" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestListByMatchQuery_StatusFilterAddsArg(t *testing.T) {
	confirmed := convocation.StatusConfirmed
	query, args, err := listByMatchQuery("club-la-cantera", "lc-match-01", &confirmed)
	if err != nil {
		t.Fatalf("build query failed: %v", err)
	}

	if !strings.Contains(query, "mc.status = $3") {
		t.Fatalf("status filter missing: %s", query)
	}
	if len(args) != 3 || args[2] != string(confirmed) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestPlayerHistoryQuery_TenantBoundJoin(t *testing.T) {
	query, args, err := playerHistoryQuery("club-la-cantera", "lc-player-01", 20)
	if err != nil {
		t.Fatalf("build query failed: %v", err)
	}

	if !strings.Contains(query, "JOIN matches m ON m.id = mc.match_id AND m.tenant_id = mc.tenant_id") {
		t.Fatalf("match join is not tenant bound: %s", query)
	}
	if !strings.Contains(query, "ORDER BY m.match_date DESC, m.kickoff_time DESC LIMIT 20") {
		t.Fatalf("unexpected ordering or limit: %s", query)
	}
	if len(args) != 2 || args[0] != "club-la-cantera" || args[1] != "lc-player-01" {
		t.Fatalf("unexpected args: %v", args)
	}
}
