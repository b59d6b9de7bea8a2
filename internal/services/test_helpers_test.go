package services_test

import (
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

var (
	mentorUser = models.SessionUser{UserID: 1, Name: "Ada Mentor", Email: "ada@example.com", Role: models.RoleMentor}
	menteeUser = models.SessionUser{UserID: 2, Name: "Bob Mentee", Email: "bob@example.com", Role: models.RoleMentoree}
	otherUser  = models.SessionUser{UserID: 3, Name: "Cy Other", Email: "cy@example.com", Role: models.RoleMentoree}
)

func strPtr(s string) *string {
	return &s
}
