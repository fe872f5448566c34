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

package event

const SubmissionCompletedTopic = "submission_completed_events"

// SubmissionCompletedEvent 提交落库之后对外广播的结果，
// 供通知、实时推送等下游消费，不含 flag 原文
type SubmissionCompletedEvent struct {
	EventId       string `json:"eventId"`
	SubmissionId  int64  `json:"submissionId"`
	CompetitionId int64  `json:"competitionId"`
	ChallengeId   int64  `json:"challengeId"`
	ActorId       int64  `json:"actorId"`
	Uid           int64  `json:"uid"`
	Correct       bool   `json:"correct"`
	Points        int64  `json:"points"`
	SubmittedAt   int64  `json:"submittedAt"`
}
