package response

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"influencer-srv/pkg/discord"
	pkgErrors "influencer-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Known HTTPErrors keep their status code and
// message; anything else becomes a 500 and is reported to Discord.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	notifyDiscord(c, discordClient, "Internal Server Error", err)

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Something went wrong",
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	notifyDiscord(c, discordClient, "Panic Recovered", fmt.Errorf("%v", recovered))

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Something went wrong",
	})
}

func notifyDiscord(c *gin.Context, discordClient discord.IDiscord, title string, err error) {
	if discordClient == nil {
		return
	}

	path := c.Request.URL.Path
	method := c.Request.Method
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = discordClient.SendError(ctx, title, fmt.Sprintf("%s %s", method, path), err)
	}()
}
