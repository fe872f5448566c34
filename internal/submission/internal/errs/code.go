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

package errs

var (
	SystemError       = ErrorCode{Code: 503001, Msg: "系统错误"}
	RateLimited       = ErrorCode{Code: 503002, Msg: "提交过于频繁，请稍后再试"}
	CooldownActive    = ErrorCode{Code: 503003, Msg: "错误次数过多，冷却中"}
	ChallengeNotFound = ErrorCode{Code: 503004, Msg: "题目不存在"}
	Forbidden         = ErrorCode{Code: 503005, Msg: "当前不能提交该题"}
	AlreadySolved     = ErrorCode{Code: 503006, Msg: "已经解出该题"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
