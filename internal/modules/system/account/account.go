package account

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maison-lumiere/atelier/internal/middleware"
	"github.com/maison-lumiere/atelier/internal/models"
	jwtpkg "github.com/maison-lumiere/atelier/internal/pkg/jwt"
	"github.com/maison-lumiere/atelier/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 30 * 24 * time.Hour

// ErrInvalidCredentials covers unknown email, wrong password, and missing
// user alike; callers must not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordDTO struct {
	Current string `json:"current" binding:"required"`
	New     string `json:"new"     binding:"required,min=8"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Login(email, password string) (string, error) {
	var u models.UserModel
	if err := s.db.Select("id, password_hash").
		Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", err
	}
	return jwtpkg.Sign(u.ID, sessionTTL)
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) ChangePassword(userID, current, newPassword string) error {
	u, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, current); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(u).Update("password_hash", string(hash)).Error
}

func verifyPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/account")
	a.POST("/login", h.login)
	a.GET("/session", authMW, h.session)
	a.POST("/change-password", authMW, h.changePassword)
}

// login POST /account/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}

// session GET /account/session  [auth]
func (h *Handler) session(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	})
}

// changePassword POST /account/change-password  [auth]
func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.ChangePassword(middleware.CurrentUserID(c), dto.Current, dto.New); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"success": true})
}
