package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
}
