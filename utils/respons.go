package utils

import "github.com/gin-gonic/gin"

// RespondError answers with the wire's error shape: {"error": message}.
// Clients parse this body and fall back to a generic message when a
// proxy mangles it.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
