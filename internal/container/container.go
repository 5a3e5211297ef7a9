package container

import (
	"time"

	app "matchbot/internal/application"
	"matchbot/internal/domain/port"
)

type Container struct {
	Dialog   *app.DialogEngine
	Matching *app.MatchingSession
	Guard    *app.AccessGuard
	Profiles *app.ProfileService
}

func New(profiles port.ProfileStore, media port.MediaStore, candidates port.CandidateSource, storeTimeout time.Duration) *Container {
	guard := app.NewAccessGuard(profiles, storeTimeout)
	matching := app.NewMatchingSession(candidates)
	dialog := app.NewDialogEngine(profiles, media, matching, guard, storeTimeout)
	profileService := app.NewProfileService(guard, profiles, storeTimeout)

	return &Container{
		Dialog:   dialog,
		Matching: matching,
		Guard:    guard,
		Profiles: profileService,
	}
}
