package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/mentor-hub/internal/interface/http"
)

// MentorModule exposes CRUD on mentor profiles under /mentors.
type MentorModule struct {
	Handler *handlers.MentorHandler
}

func NewMentorModule(h *handlers.MentorHandler) *MentorModule {
	return &MentorModule{Handler: h}
}

func (m *MentorModule) Register(rg *gin.RouterGroup) {
	mentors := rg.Group("/mentors")
	{
		mentors.POST("/", m.Handler.Create)
		mentors.GET("/", m.Handler.List)
		mentors.GET("/:id", m.Handler.Get)
		mentors.PUT("/:id", m.Handler.Update)
		mentors.DELETE("/:id", m.Handler.Delete)
	}
}
