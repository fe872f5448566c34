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

package job

import (
	"context"
	"fmt"

	"github.com/ctfarena/arena/internal/submission/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcileScoresJob)(nil)

// ReconcileScoresJob 补偿计分事务留下的缺口：
// 答对的提交必须有对应的得分，没有就重放计分事务。
// scores 上的唯一索引保证重放是幂等的
type ReconcileScoresJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewReconcileScoresJob(svc service.Service, limit int) *ReconcileScoresJob {
	return &ReconcileScoresJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (r *ReconcileScoresJob) Name() string {
	return "ReconcileScoresJob"
}

func (r *ReconcileScoresJob) Run(ctx context.Context) error {
	cnt, err := r.svc.ReconcileScores(ctx, r.limit)
	if err != nil {
		return fmt.Errorf("补偿缺失得分失败: %w", err)
	}
	if cnt > 0 {
		// 出现缺口说明线上计分事务失败过，值得告警
		r.logger.Warn("补偿了缺失的得分", elog.Int64("count", cnt))
	}
	return nil
}
