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
	"github.com/ctfarena/arena/internal/submission/internal/domain"
	"github.com/ctfarena/arena/internal/submission/internal/errs"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type SubmitReq struct {
	ChallengeID int64  `json:"challengeId"`
	Flag        string `json:"flag"`
}

type SubmitResp struct {
	SubmissionID int64  `json:"submissionId"`
	Correct      bool   `json:"correct"`
	Points       int64  `json:"points"`
	Message      string `json:"message"`
}

// RetryAfter 限流或冷却被拒时给客户端的倒计时
type RetryAfter struct {
	Seconds int64 `json:"seconds,omitempty"`
	Minutes int64 `json:"minutes,omitempty"`
}

func newSubmitResp(res domain.Result) SubmitResp {
	return SubmitResp{
		SubmissionID: res.SubmissionID,
		Correct:      res.Correct,
		Points:       res.Points,
		Message:      res.Message,
	}
}
