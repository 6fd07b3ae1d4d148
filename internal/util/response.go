package util

import (
	"github.com/gin-gonic/gin"
)

// Detail writes an error body of the form {"detail": ...}. The detail is
// usually a string but may be the backend's errors array passed through.
func Detail(c *gin.Context, httpStatus int, detail interface{}) {
	c.JSON(httpStatus, gin.H{"detail": detail})
}

// Message writes a plain acknowledgment body {"message": ...}.
func Message(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"message": msg})
}
