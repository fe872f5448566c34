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

	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ctfarena/arena/internal/ranking/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc     service.Service
	compSvc competition.Service
}

func NewHandler(svc service.Service, compSvc competition.Service) *Handler {
	return &Handler{svc: svc, compSvc: compSvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/ranking")
	g.POST("/individual", ginx.B[CompetitionViewReq](h.Individual))
	g.POST("/team", ginx.B[CompetitionViewReq](h.Team))
	g.POST("/global", ginx.B[GlobalViewReq](h.Global))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/ranking/mine", ginx.BS[MineReq](h.Mine))
}

func (h *Handler) Individual(ctx *ginx.Context, req CompetitionViewReq) (ginx.Result, error) {
	entries, err := h.svc.Individual(ctx, req.CompetitionID, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(entries, newEntry),
	}, nil
}

func (h *Handler) Team(ctx *ginx.Context, req CompetitionViewReq) (ginx.Result, error) {
	entries, err := h.svc.Team(ctx, req.CompetitionID, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(entries, newEntry),
	}, nil
}

func (h *Handler) Global(ctx *ginx.Context, req GlobalViewReq) (ginx.Result, error) {
	entries, err := h.svc.Global(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(entries, newEntry),
	}, nil
}

// Mine 查当前登录用户自己的名次。
// 团队赛查的是所在队伍在战队榜上的名次
func (h *Handler) Mine(ctx *ginx.Context, req MineReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	comp, err := h.compSvc.Info(ctx, req.CompetitionID)
	if errors.Is(err, competition.ErrCompetitionNotFound) {
		return competitionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	kind := domain.KindIndividual
	actorId := uid
	if comp.Mode == competition.ModeTeam {
		kind = domain.KindTeam
		actorId, err = h.compSvc.ResolveActor(ctx, req.CompetitionID, uid)
		if errors.Is(err, competition.ErrNotRegistered) {
			// 没报名自然没有名次，按未上榜返回
			return ginx.Result{
				Data: newActorRank(domain.ActorRank{}),
			}, nil
		}
		if err != nil {
			return systemErrorResult, err
		}
	}
	ar, err := h.svc.ActorRank(ctx, kind, req.CompetitionID, actorId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newActorRank(ar),
	}, nil
}
