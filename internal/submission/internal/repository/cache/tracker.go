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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=./tracker.go -package=cachemocks -destination=./mocks/tracker.mock.go Tracker

const (
	// 60 秒窗口内最多 5 次提交
	rateLimit  = 5
	rateWindow = time.Minute
	// 连续答错 3 次触发 5 分钟冷却，计数器一小时不动自然过期
	streakLimit = 3
	streakTTL   = time.Hour
	cooldownTTL = 5 * time.Minute
)

// Tracker 限流和三振冷却两套独立状态机，都落在 redis 里
type Tracker interface {
	// CheckRate 返回 0 表示放行，大于 0 表示还要等多久。
	// 计数本身也算一次提交，即被拒绝的请求同样消耗窗口配额
	CheckRate(ctx context.Context, uid int64) (time.Duration, error)
	// CheckCooldown 返回冷却剩余时长，0 表示没有冷却
	CheckCooldown(ctx context.Context, actorId, challengeId int64) (time.Duration, error)
	// RecordOutcome 答对清空连错计数和冷却标记，答错累加计数，
	// 满三次落一个带绝对到期时刻的冷却标记
	RecordOutcome(ctx context.Context, actorId, challengeId int64, correct bool) error
}

type redisTracker struct {
	client redis.Cmdable
}

func NewTracker(client redis.Cmdable) Tracker {
	return &redisTracker{client: client}
}

func (t *redisTracker) CheckRate(ctx context.Context, uid int64) (time.Duration, error) {
	// 限流窗口按提交用户记，不按计分主体：限流在解析计分主体之前执行，
	// 此时还不知道队伍。代价是团队赛每个成员各有一份配额
	key := t.rateKey(uid)
	cnt, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "限流计数失败")
	}
	if cnt == 1 {
		// 新窗口的第一笔才挂过期时间，窗口不随后续提交滑动
		if err = t.client.Expire(ctx, key, rateWindow).Err(); err != nil {
			return 0, errors.Wrap(err, "设置限流窗口失败")
		}
	}
	if cnt <= rateLimit {
		return 0, nil
	}
	ttl, err := t.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrap(err, "读取限流窗口失败")
	}
	if ttl <= 0 {
		// Incr 和 Expire 之间挂掉过，残留了一个永不过期的计数器，补一个完整窗口
		_ = t.client.Expire(ctx, key, rateWindow).Err()
		ttl = rateWindow
	}
	return ttl, nil
}

func (t *redisTracker) CheckCooldown(ctx context.Context, actorId, challengeId int64) (time.Duration, error) {
	key := t.cooldownKey(actorId, challengeId)
	expireAt, err := t.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "读取冷却标记失败")
	}
	remain := time.Until(time.UnixMilli(expireAt))
	if remain <= 0 {
		// 存的到期时刻已过，标记视同不存在，顺手清掉
		_ = t.client.Del(ctx, key).Err()
		return 0, nil
	}
	return remain, nil
}

func (t *redisTracker) RecordOutcome(ctx context.Context, actorId, challengeId int64, correct bool) error {
	streakKey := t.streakKey(actorId, challengeId)
	cooldownKey := t.cooldownKey(actorId, challengeId)
	if correct {
		err := t.client.Del(ctx, streakKey, cooldownKey).Err()
		return errors.Wrap(err, "清理冷却状态失败")
	}
	cnt, err := t.client.Incr(ctx, streakKey).Result()
	if err != nil {
		return errors.Wrap(err, "连错计数失败")
	}
	if cnt == 1 {
		if err = t.client.Expire(ctx, streakKey, streakTTL).Err(); err != nil {
			return errors.Wrap(err, "设置连错计数过期失败")
		}
	}
	if cnt < streakLimit {
		return nil
	}
	expireAt := time.Now().Add(cooldownTTL).UnixMilli()
	if err = t.client.Set(ctx, cooldownKey, expireAt, cooldownTTL).Err(); err != nil {
		return errors.Wrap(err, "写入冷却标记失败")
	}
	// 冷却结束后重新从零数起
	return errors.Wrap(t.client.Del(ctx, streakKey).Err(), "重置连错计数失败")
}

func (t *redisTracker) rateKey(uid int64) string {
	return fmt.Sprintf("submission:rate:%d", uid)
}

func (t *redisTracker) streakKey(actorId, challengeId int64) string {
	return fmt.Sprintf("submission:streak:%d:%d", actorId, challengeId)
}

func (t *redisTracker) cooldownKey(actorId, challengeId int64) string {
	return fmt.Sprintf("submission:cooldown:%d:%d", actorId, challengeId)
}
