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

package competition

import (
	"github.com/ctfarena/arena/internal/competition/internal/domain"
	"github.com/ctfarena/arena/internal/competition/internal/service"
)

type Module struct {
	Svc Service
}

type Service = service.Service

type Competition = domain.Competition
type Registration = domain.Registration
type Mode = domain.Mode
type Status = domain.Status

const (
	ModeIndividual = domain.ModeIndividual
	ModeTeam       = domain.ModeTeam

	StatusPending   = domain.StatusPending
	StatusActive    = domain.StatusActive
	StatusCompleted = domain.StatusCompleted
)

var (
	ErrCompetitionNotFound = service.ErrCompetitionNotFound
	ErrNotRegistered       = service.ErrNotRegistered
)
