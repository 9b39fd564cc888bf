package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowOrigins = strings.Split(allowedDomains, ",")
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization")

	return cors.New(conf)
}
