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

//go:build e2e

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ctfarena/arena/internal/submission/internal/repository/cache"
	testioc "github.com/ctfarena/arena/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_CheckRate(t *testing.T) {
	client := testioc.InitRedis()
	tracker := cache.NewTracker(client)
	ctx := context.Background()
	const uid = int64(9001)
	t.Cleanup(func() {
		client.Del(ctx, fmt.Sprintf("submission:rate:%d", uid))
	})

	// 窗口内前 5 次放行
	for i := 0; i < cache.RateLimit; i++ {
		wait, err := tracker.CheckRate(ctx, uid)
		require.NoError(t, err)
		assert.Zero(t, wait)
	}
	// 第 6 次被拒，等待时间不超过整个窗口
	wait, err := tracker.CheckRate(ctx, uid)
	require.NoError(t, err)
	assert.Positive(t, wait)
	assert.LessOrEqual(t, wait, cache.RateWindow)
	// 被拒的请求同样消耗配额，窗口不重置
	wait2, err := tracker.CheckRate(ctx, uid)
	require.NoError(t, err)
	assert.Positive(t, wait2)
}

func TestTracker_Cooldown(t *testing.T) {
	client := testioc.InitRedis()
	tracker := cache.NewTracker(client)
	ctx := context.Background()
	const (
		actorId     = int64(9002)
		challengeId = int64(42)
	)
	streakKey := fmt.Sprintf("submission:streak:%d:%d", actorId, challengeId)
	cooldownKey := fmt.Sprintf("submission:cooldown:%d:%d", actorId, challengeId)
	t.Cleanup(func() {
		client.Del(ctx, streakKey, cooldownKey)
	})

	// 连错两次还不触发
	for i := 0; i < 2; i++ {
		require.NoError(t, tracker.RecordOutcome(ctx, actorId, challengeId, false))
		wait, err := tracker.CheckCooldown(ctx, actorId, challengeId)
		require.NoError(t, err)
		assert.Zero(t, wait)
	}
	// 第三次触发 5 分钟冷却，计数器清零
	require.NoError(t, tracker.RecordOutcome(ctx, actorId, challengeId, false))
	wait, err := tracker.CheckCooldown(ctx, actorId, challengeId)
	require.NoError(t, err)
	assert.Positive(t, wait)
	assert.LessOrEqual(t, wait, cache.CooldownTTL)
	cnt, err := client.Exists(ctx, streakKey).Result()
	require.NoError(t, err)
	assert.Zero(t, cnt)

	// 答对清掉冷却标记
	require.NoError(t, tracker.RecordOutcome(ctx, actorId, challengeId, true))
	wait, err = tracker.CheckCooldown(ctx, actorId, challengeId)
	require.NoError(t, err)
	assert.Zero(t, wait)
}

func TestTracker_CooldownLazyExpiry(t *testing.T) {
	client := testioc.InitRedis()
	tracker := cache.NewTracker(client)
	ctx := context.Background()
	const (
		actorId     = int64(9003)
		challengeId = int64(43)
	)
	cooldownKey := fmt.Sprintf("submission:cooldown:%d:%d", actorId, challengeId)
	t.Cleanup(func() {
		client.Del(ctx, cooldownKey)
	})

	// 物理键还在，但存的到期时刻已过，按不存在处理并顺手删除
	past := time.Now().Add(-time.Second).UnixMilli()
	require.NoError(t, client.Set(ctx, cooldownKey, past, cache.CooldownTTL).Err())
	wait, err := tracker.CheckCooldown(ctx, actorId, challengeId)
	require.NoError(t, err)
	assert.Zero(t, wait)
	cnt, err := client.Exists(ctx, cooldownKey).Result()
	require.NoError(t, err)
	assert.Zero(t, cnt)
}
