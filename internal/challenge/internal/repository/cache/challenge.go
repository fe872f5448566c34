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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// 题目读多写少，短 TTL 足以扛住提交高峰
const expiration = 10 * time.Minute

var ErrChallengeNotCached = errors.New("题目缓存未命中")

type ChallengeCache interface {
	Set(ctx context.Context, ch domain.Challenge) error
	Get(ctx context.Context, id int64) (domain.Challenge, error)
	Del(ctx context.Context, id int64) error
}

type challengeCache struct {
	ec ecache.Cache
}

func NewChallengeCache(ec ecache.Cache) ChallengeCache {
	return &challengeCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "challenge:",
		},
	}
}

func (c *challengeCache) Set(ctx context.Context, ch domain.Challenge) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return errors.Wrap(err, "序列化题目失败")
	}
	return c.ec.Set(ctx, c.key(ch.ID), string(data), expiration)
}

func (c *challengeCache) Get(ctx context.Context, id int64) (domain.Challenge, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Challenge{}, ErrChallengeNotCached
	}
	if val.Err != nil {
		return domain.Challenge{}, val.Err
	}
	var ch domain.Challenge
	err := json.Unmarshal([]byte(val.Val.(string)), &ch)
	return ch, errors.Wrap(err, "反序列化题目失败")
}

func (c *challengeCache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *challengeCache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
