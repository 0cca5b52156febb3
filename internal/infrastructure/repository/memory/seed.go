package memory

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/coach"
	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/domain/team"
	"github.com/canterahq/cantera/internal/domain/tenant"
)

const (
	TenantIDLaCantera = "club-la-cantera"
	TenantIDNorte     = "academia-norte"
)

func SeedTenants() []tenant.Tenant {
	return []tenant.Tenant{
		{
			ID:           TenantIDLaCantera,
			Name:         "Club La Cantera",
			ContactEmail: "info@lacantera.example",
			PrimaryColor: "#1d3557",
		},
		{
			ID:           TenantIDNorte,
			Name:         "Academia Norte",
			ContactEmail: "hola@academianorte.example",
		},
	}
}

func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: "lc-coach-01", TenantID: TenantIDLaCantera, FullName: "Marta Iglesias", Email: "marta@lacantera.example", LicenseLevel: "UEFA B"},
		{ID: "lc-coach-02", TenantID: TenantIDLaCantera, FullName: "Pablo Ferrer", LicenseLevel: "UEFA C"},
		{ID: "an-coach-01", TenantID: TenantIDNorte, FullName: "Diego Santana"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "lc-team-sub12", TenantID: TenantIDLaCantera, Name: "Alevín A", Category: "sub-12", CoachID: "lc-coach-02"},
		{ID: "lc-team-sub15", TenantID: TenantIDLaCantera, Name: "Cadete A", Category: "sub-15", CoachID: "lc-coach-01"},
		{ID: "an-team-sub15", TenantID: TenantIDNorte, Name: "Cadete Norte", Category: "sub-15", CoachID: "an-coach-01"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "lc-player-01", TenantID: TenantIDLaCantera, FirstName: "Hugo", LastName: "Alarcón", TeamIDs: []string{"lc-team-sub15"}},
		{ID: "lc-player-02", TenantID: TenantIDLaCantera, FirstName: "Iker", LastName: "Benítez", TeamIDs: []string{"lc-team-sub15"}},
		{ID: "lc-player-03", TenantID: TenantIDLaCantera, FirstName: "Mateo", LastName: "Cruz", TeamIDs: []string{"lc-team-sub15"}},
		{ID: "lc-player-04", TenantID: TenantIDLaCantera, FirstName: "Leo", LastName: "Duarte", TeamIDs: []string{"lc-team-sub15"}},
		{ID: "lc-player-05", TenantID: TenantIDLaCantera, FirstName: "Nico", LastName: "Estévez", TeamIDs: []string{"lc-team-sub12"}},
		{ID: "an-player-01", TenantID: TenantIDNorte, FirstName: "Bruno", LastName: "Ríos", TeamIDs: []string{"an-team-sub15"}},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:          "lc-match-01",
			TenantID:    TenantIDLaCantera,
			HomeTeamID:  "lc-team-sub15",
			MatchDate:   time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
			KickoffTime: "10:30",
			Venue:       "Campo Municipal Norte",
			Competition: "Liga Cadete",
			Type:        match.TypeLeague,
			Status:      match.StatusScheduled,
		},
		{
			ID:          "lc-match-02",
			TenantID:    TenantIDLaCantera,
			HomeTeamID:  "lc-team-sub15",
			MatchDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			KickoffTime: "12:00",
			Venue:       "Ciudad Deportiva La Cantera",
			Competition: "Liga Cadete",
			Type:        match.TypeLeague,
			Status:      match.StatusScheduled,
		},
		{
			ID:         "lc-match-03",
			TenantID:   TenantIDLaCantera,
			HomeTeamID: "lc-team-sub12",
			MatchDate:  time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
			Type:       match.TypeFriendly,
			Status:     match.StatusScheduled,
			Notes:      "rival externo: CD San Andrés",
		},
		{
			ID:         "an-match-01",
			TenantID:   TenantIDNorte,
			HomeTeamID: "an-team-sub15",
			MatchDate:  time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			Type:       match.TypeCup,
			Status:     match.StatusScheduled,
		},
	}
}
