package user

import (
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
)

type UserHandler struct {
	svc *svc.ServiceContext
}

func NewUserHandler(svc *svc.ServiceContext) *UserHandler {
	return &UserHandler{svc: svc}
}
