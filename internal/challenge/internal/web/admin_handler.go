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
	"github.com/ctfarena/arena/internal/challenge/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminChallengeHandler struct {
	svc service.Service
}

func NewAdminChallengeHandler(svc service.Service) *AdminChallengeHandler {
	return &AdminChallengeHandler{svc: svc}
}

func (h *AdminChallengeHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/challenge/save", ginx.B[SaveReq](h.Save))
	server.POST("/challenge/list", ginx.B[ListReq](h.List))
}

func (h *AdminChallengeHandler) PublicRoutes(server *gin.Engine) {}

func (h *AdminChallengeHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Challenge.toDomain(), req.Flag)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminChallengeHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, err := h.svc.List(ctx, req.CompetitionID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, newChallenge),
	}, nil
}
