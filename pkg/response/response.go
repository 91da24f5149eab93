package response

import "github.com/gin-gonic/gin"

// The API serves raw JSON values (arrays, objects) on success and a flat
// {"error": message} object on failure.

func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func OK(c *gin.Context, status int) {
	c.JSON(status, gin.H{"ok": true})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
