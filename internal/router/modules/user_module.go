package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/mentor-hub/internal/interface/http"
	"github.com/oksasatya/mentor-hub/internal/interface/middleware"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
)

// UserModule serves registration and user lookups.
// Public: POST /register/, GET /users/, GET /users/:id
// Protected: GET /me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := limiter(20, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/register/", registerLimiter, m.Handler.Register)

	users := rg.Group("/users")
	{
		users.GET("/", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
	}

	rg.GET("/me", middleware.JWTAuth(m.JWT), limiter(120, time.Minute, middleware.KeyByUserID(), nil), m.Handler.Me)
}
