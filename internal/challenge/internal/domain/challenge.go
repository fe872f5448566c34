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

type Challenge struct {
	ID            int64
	CompetitionID int64
	Title         string
	// Points 正整数，答对一次性全额计入
	Points int64
	// FlagHash/FlagSalt 是 flag 的全部落库材料，明文不存在于任何存储。
	// 没有 flag 目标的题目两者为空。
	FlagHash      string
	FlagSalt      string
	CaseSensitive bool
	Visible       bool
	// SolveCnt 与正确提交数保持一致，由计分事务维护
	SolveCnt int64
}

func (c Challenge) HasFlag() bool {
	return c.FlagHash != "" && c.FlagSalt != ""
}
