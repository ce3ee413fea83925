package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database/users"
	"github.com/mrlokans/audiobook/internal/dto"
)

// UsersController serves roles and users. Deleting a role deletes its users.
type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

func (uc *UsersController) ListRoles(c *gin.Context) {
	roles, err := uc.store.ListRoles(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list roles")
		return
	}
	respondOK(c, dto.FromRoles(roles))
}

func (uc *UsersController) CreateRole(c *gin.Context) {
	var payload dto.RolePayload
	if !bindPayload(c, &payload) {
		return
	}
	role, err := uc.store.CreateRole(c.Request.Context(), *payload.Name)
	if err != nil {
		respondStoreError(c, err, "role")
		return
	}
	respondCreated(c, dto.FromRole(*role))
}

func (uc *UsersController) GetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	role, err := uc.store.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "role")
		return
	}
	respondOK(c, dto.FromRole(*role))
}

func (uc *UsersController) DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	removed, err := uc.store.DeleteRole(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "role")
		return
	}
	if removed > 0 {
		log.Printf("Deleted role %d and %d users holding it", id, removed)
	}
	c.Status(http.StatusNoContent)
}

func (uc *UsersController) ListUsers(c *gin.Context) {
	filter, ok := parseFilter(c, users.UserFilters)
	if !ok {
		return
	}
	list, err := uc.store.ListUsers(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}
	respondOK(c, dto.FromUsers(list))
}

func (uc *UsersController) CreateUser(c *gin.Context) {
	var payload dto.UserPayload
	if !bindPayload(c, &payload) {
		return
	}
	user, err := uc.store.CreateUser(c.Request.Context(), *payload.Username, payload.Email, payload.Role)
	if err != nil {
		respondStoreError(c, err, "user")
		return
	}
	respondCreated(c, dto.FromUser(*user))
}

func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := uc.store.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "user")
		return
	}
	respondOK(c, dto.FromUser(*user))
}

func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := uc.store.DeleteUser(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "user")
		return
	}
	c.Status(http.StatusNoContent)
}
