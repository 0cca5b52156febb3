package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/super-admin/login", handler.SuperAdminLogin)
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/password-reset", handler.RequestPasswordReset)
	mux.HandleFunc("POST /v1/auth/password-reset/confirm", handler.ResetPassword)
}

func registerTenantRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	superAdmin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireSuperAdmin(h))
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(h))
	}

	mux.Handle("POST /v1/tenants", superAdmin(handler.CreateTenant))
	mux.Handle("GET /v1/tenants", superAdmin(handler.ListTenants))
	mux.Handle("GET /v1/tenants/{tenantID}", superAdmin(handler.GetTenant))
	mux.Handle("PUT /v1/tenants/{tenantID}", superAdmin(handler.UpdateTenant))
	mux.Handle("DELETE /v1/tenants/{tenantID}", superAdmin(handler.DeleteTenant))
	mux.Handle("PUT /v1/tenant/branding", admin(handler.UpdateBranding))

	mux.Handle("POST /v1/invitations", admin(handler.CreateInvitation))
	mux.Handle("GET /v1/invitations", admin(handler.ListInvitations))
	mux.Handle("DELETE /v1/invitations/{invitationID}", admin(handler.DeleteInvitation))
}

func registerAcademyRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	staff := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, http.HandlerFunc(h))
	}

	mux.Handle("POST /v1/players", staff(handler.CreatePlayer))
	mux.Handle("GET /v1/players", staff(handler.ListPlayers))
	mux.Handle("GET /v1/players/{playerID}", staff(handler.GetPlayer))
	mux.Handle("PUT /v1/players/{playerID}", staff(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", staff(handler.DeletePlayer))

	mux.Handle("POST /v1/teams", staff(handler.CreateTeam))
	mux.Handle("GET /v1/teams", staff(handler.ListTeams))
	mux.Handle("GET /v1/teams/{teamID}", staff(handler.GetTeam))
	mux.Handle("PUT /v1/teams/{teamID}", staff(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", staff(handler.DeleteTeam))
	mux.Handle("GET /v1/teams/{teamID}/players", staff(handler.ListTeamPlayers))
	mux.Handle("PUT /v1/teams/{teamID}/players", staff(handler.ReplaceTeamPlayers))

	mux.Handle("POST /v1/coaches", staff(handler.CreateCoach))
	mux.Handle("GET /v1/coaches", staff(handler.ListCoaches))
	mux.Handle("GET /v1/coaches/{coachID}", staff(handler.GetCoach))
	mux.Handle("PUT /v1/coaches/{coachID}", staff(handler.UpdateCoach))
	mux.Handle("DELETE /v1/coaches/{coachID}", staff(handler.DeleteCoach))

	mux.Handle("POST /v1/matches", staff(handler.CreateMatch))
	mux.Handle("GET /v1/matches", staff(handler.ListMatches))
	mux.Handle("GET /v1/matches/{matchID}", staff(handler.GetMatch))
	mux.Handle("PUT /v1/matches/{matchID}", staff(handler.UpdateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", staff(handler.DeleteMatch))

	mux.Handle("POST /v1/trainings", staff(handler.CreateTraining))
	mux.Handle("GET /v1/trainings", staff(handler.ListTrainings))
	mux.Handle("GET /v1/trainings/{trainingID}", staff(handler.GetTraining))
	mux.Handle("PUT /v1/trainings/{trainingID}", staff(handler.UpdateTraining))
	mux.Handle("DELETE /v1/trainings/{trainingID}", staff(handler.DeleteTraining))
	mux.Handle("POST /v1/trainings/{trainingID}/attendance", staff(handler.RecordAttendance))
	mux.Handle("GET /v1/trainings/{trainingID}/attendance", staff(handler.ListAttendance))

	mux.Handle("POST /v1/players/{playerID}/physical-tests", staff(handler.CreatePhysicalTest))
	mux.Handle("GET /v1/players/{playerID}/physical-tests", staff(handler.ListPhysicalTests))
	mux.Handle("PUT /v1/physical-tests/{testID}", staff(handler.UpdatePhysicalTest))
	mux.Handle("DELETE /v1/physical-tests/{testID}", staff(handler.DeletePhysicalTest))

	mux.Handle("GET /v1/dashboard", staff(handler.GetDashboard))
}

func registerConvocationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	staff := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, http.HandlerFunc(h))
	}

	mux.Handle("POST /v1/matches/{matchID}/convocations", staff(handler.AddConvocations))
	mux.Handle("POST /v1/matches/{matchID}/convocations/duplicate", staff(handler.DuplicateConvocations))
	mux.Handle("GET /v1/matches/{matchID}/convocations", staff(handler.ListConvocations))
	mux.Handle("GET /v1/matches/{matchID}/lineup", staff(handler.GetLineup))
	mux.Handle("DELETE /v1/matches/{matchID}/players/{playerID}", staff(handler.RemoveConvocation))
	mux.Handle("PATCH /v1/convocations/{convocationID}", staff(handler.UpdateConvocation))
	mux.Handle("POST /v1/convocations/{convocationID}/confirm", staff(handler.ConfirmConvocation))
	mux.Handle("POST /v1/convocations/{convocationID}/absence", staff(handler.MarkConvocationAbsence))
	mux.Handle("POST /v1/convocations/{convocationID}/stats", staff(handler.RecordConvocationStats))
	mux.Handle("GET /v1/players/{playerID}/history", staff(handler.GetPlayerHistory))
	mux.Handle("GET /v1/players/{playerID}/convocation-stats", staff(handler.GetPlayerConvocationStats))
}
