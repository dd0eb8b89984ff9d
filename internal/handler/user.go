package handler

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice/internal/middleware"
	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles shown on the Access screen.
var validRoles = map[string]bool{
	"Administrator": true,
	"Manager":       true,
	"Operator":      true,
}

// UserHandler serves the Access screen: account provisioning, role and
// status management, plus the current-user profile endpoints.
type UserHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserHandler(db *gorm.DB, bcryptCost int) *UserHandler {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserHandler{DB: db, BcryptCost: bcryptCost}
}

type userResp struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	LastLogin string `json:"last_login"`
}

func toUserResp(u *models.User) userResp {
	resp := userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
	if u.LastLoginAt != nil {
		resp.LastLogin = u.LastLoginAt.Format("2006-01-02 15:04")
	}
	return resp
}

// Me returns the authenticated account.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}
	util.Success(c, util.Response{
		"user": toUserResp(user),
	})
}

func (h *UserHandler) List(c *gin.Context) {
	base := h.DB.Model(&models.User{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("username LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	if err := base.Order("id ASC").Find(&users).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	resp := make([]userResp, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResp(&users[i]))
	}

	util.Success(c, util.Response{
		"users": resp,
		"total": len(resp),
	})
}

type createUserReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if !validRoles[req.Role] {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown role")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", req.Username).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Role:         req.Role,
		Status:       "active",
	}

	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"user": toUserResp(&user),
	})
}

type updateUserReq struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Role   string `json:"role" binding:"required"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if !validRoles[req.Role] {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown role")
		return
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	// An administrator cannot deactivate their own account.
	if me, ok := middleware.CurrentUser(c); ok && me.ID == user.ID && req.Status == "inactive" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot deactivate your own account")
		return
	}

	user.Email = strings.TrimSpace(req.Email)
	user.Role = req.Role
	user.Status = req.Status

	if err := h.DB.Save(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"user": toUserResp(&user),
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if me, ok := middleware.CurrentUser(c); ok && me.ID == uint(id) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cannot delete your own account")
		return
	}

	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed, please retry")
		return
	}
	if err := h.DB.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"deleted": true,
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// ChangePassword lets the authenticated user rotate their own password.
// All other sessions are revoked afterwards.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "current password is wrong")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to hash password")
		return
	}

	if err := h.DB.Model(user).Update("password_hash", string(hash)).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	if err := h.DB.Model(&models.Session{}).
		Where("user_id = ?", user.ID).
		Update("revoked", true).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"changed": true,
	})
}
