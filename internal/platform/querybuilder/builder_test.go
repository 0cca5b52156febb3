package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "first_name").
		From("players").
		Where(Eq("tenant_id", "t1"), IsNull("deleted_at")).
		OrderBy("last_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, first_name FROM players WHERE tenant_id = $1 AND deleted_at IS NULL ORDER BY last_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndGroupBy(t *testing.T) {
	query, args, err := Select("mc.player_id", "COUNT(*) AS total").
		From("match_convocations mc").
		Join("JOIN matches m ON m.id = mc.match_id").
		Where(Eq("mc.tenant_id", "t1")).
		GroupBy("mc.player_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build join query: %v", err)
	}

	wantQuery := "SELECT mc.player_id, COUNT(*) AS total FROM match_convocations mc JOIN matches m ON m.id = mc.match_id WHERE mc.tenant_id = $1 GROUP BY mc.player_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(
			In("status", []any{"scheduled", "confirmed"}),
			Expr("match_date >= ?", "2026-03-01"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE status IN ($1, $2) AND match_date >= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "2026-03-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("team_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("match_convocations").
		Columns("id", "player_id").
		Values("c1", "p1").
		Values("c2", "p2").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO match_convocations (id, player_id) VALUES ($1, $2), ($3, $4) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "p2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("match_convocations").
		Columns("id", "player_id").
		Values("c1").
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row arity mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("match_convocations").
		Set("status", "confirmado").
		SetRaw("updated_at", "NOW()").
		Where(Eq("tenant_id", "t1"), Eq("id", "c1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE match_convocations SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "confirmado" || args[2] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresSets(t *testing.T) {
	_, _, err := Update("match_convocations").Where(Eq("id", "c1")).ToSQL()
	if err == nil {
		t.Fatal("expected error for update without sets")
	}
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	query, args, err := DeleteFrom("match_convocations").
		Where(Eq("tenant_id", "t1"), Eq("match_id", "m1"), Eq("player_id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM match_convocations WHERE tenant_id = $1 AND match_id = $2 AND player_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("match_convocations").ToSQL(); err == nil {
		t.Fatal("expected error for unconditional delete")
	}
}
