// Copyright 2024 ctfarena
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ctfarena/arena/internal/submission/internal/domain"
	"github.com/ctfarena/arena/internal/submission/internal/errs"
	"github.com/ctfarena/arena/internal/submission/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/submission/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Submit(ctx, domain.Attempt{
		ChallengeID: req.ChallengeID,
		UID:         sess.Claims().Uid,
		Flag:        req.Flag,
		IP:          ctx.ClientIP(),
		UserAgent:   ctx.GetHeader("User-Agent"),
	})
	if err == nil {
		return ginx.Result{
			Data: newSubmitResp(res),
		}, nil
	}
	var rle *service.RateLimitedError
	var cde *service.CooldownError
	switch {
	case errors.As(err, &rle):
		return ginx.Result{
			Code: errs.RateLimited.Code,
			Msg:  errs.RateLimited.Msg,
			Data: RetryAfter{Seconds: rle.Seconds()},
		}, nil
	case errors.As(err, &cde):
		return ginx.Result{
			Code: errs.CooldownActive.Code,
			Msg:  errs.CooldownActive.Msg,
			Data: RetryAfter{Minutes: cde.Minutes()},
		}, nil
	case errors.Is(err, service.ErrChallengeNotFound):
		return ginx.Result{
			Code: errs.ChallengeNotFound.Code,
			Msg:  errs.ChallengeNotFound.Msg,
		}, nil
	case errors.Is(err, service.ErrNotAccessible):
		return ginx.Result{
			Code: errs.Forbidden.Code,
			Msg:  errs.Forbidden.Msg,
		}, nil
	case errors.Is(err, service.ErrAlreadySolved):
		return ginx.Result{
			Code: errs.AlreadySolved.Code,
			Msg:  errs.AlreadySolved.Msg,
		}, nil
	default:
		// 内部错误统一兜底，不向客户端透出任何细节
		return systemErrorResult, err
	}
}
