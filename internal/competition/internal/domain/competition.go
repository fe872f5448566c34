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

package domain

type Mode uint8

const (
	ModeUnknown Mode = iota
	// ModeIndividual 个人赛，计分主体是用户
	ModeIndividual
	// ModeTeam 团队赛，计分主体是队伍
	ModeTeam
)

type Status uint8

const (
	StatusUnknown Status = iota
	StatusPending
	StatusActive
	StatusCompleted
)

type Competition struct {
	ID   int64
	Name string
	Mode Mode
	// Status 由比赛生命周期管理维护，提交管线只读
	Status Status
	// 毫秒时间戳，比赛窗口为 [StartTime, EndTime)
	StartTime int64
	EndTime   int64
}

// Accepting 当前时刻是否接受提交
func (c Competition) Accepting(now int64) bool {
	return c.Status == StatusActive && now >= c.StartTime && now < c.EndTime
}

type RegistrationStatus uint8

const (
	RegistrationStatusUnknown RegistrationStatus = iota
	RegistrationStatusPending
	RegistrationStatusApproved
	RegistrationStatusRejected
)

type Registration struct {
	ID            int64
	CompetitionID int64
	UID           int64
	// TeamID 团队赛的队伍，个人赛为 0
	TeamID int64
	Status RegistrationStatus
}
