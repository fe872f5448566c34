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

// Attempt 一次提交请求。Flag 原文只在验证前存活，验证之后立即清空
type Attempt struct {
	ChallengeID int64
	UID         int64
	Flag        string
	IP          string
	UserAgent   string
}

// Submission 提交流水，只追加。不含 flag 原文
type Submission struct {
	ID            int64
	CompetitionID int64
	ChallengeID   int64
	// UID 提交动作的发起人
	UID int64
	// ActorID 计分主体，个人赛等于 UID，团队赛是队伍 id
	ActorID     int64
	Correct     bool
	IP          string
	UserAgent   string
	SubmittedAt int64
}

// Score 计分账本里的一条得分，写入后不可变
type Score struct {
	ID            int64
	CompetitionID int64
	ChallengeID   int64
	UID           int64
	ActorID       int64
	SubmissionID  int64
	Points        int64
	SolvedAt      int64
}

// Result 对外安全的提交结果。答错时 Message 不解释原因
type Result struct {
	SubmissionID int64
	Correct      bool
	Points       int64
	Message      string
}
