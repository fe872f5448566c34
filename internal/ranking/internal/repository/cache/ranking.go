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

	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./ranking.go -package=cachemocks -destination=./mocks/ranking.mock.go RankingCache

const (
	// 比赛内视图正确提交时会被主动失效，TTL 只兜底
	competitionExpiration = 30 * time.Second
	// 全局视图只看已结束的比赛，允许陈旧到 TTL
	globalExpiration = 60 * time.Second
)

var ErrRankingNotCached = errors.New("榜单缓存未命中")

type RankingCache interface {
	Set(ctx context.Context, kind domain.Kind, competitionId int64, entries []domain.Entry) error
	Get(ctx context.Context, kind domain.Kind, competitionId int64) ([]domain.Entry, error)
	Del(ctx context.Context, kind domain.Kind, competitionId int64) error
}

type rankingCache struct {
	ec ecache.Cache
}

func NewRankingCache(ec ecache.Cache) RankingCache {
	return &rankingCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "ranking:",
		},
	}
}

func (c *rankingCache) Set(ctx context.Context, kind domain.Kind, competitionId int64, entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "序列化榜单失败")
	}
	expiration := competitionExpiration
	if kind == domain.KindGlobal {
		expiration = globalExpiration
	}
	// 整体替换快照，读侧不会看到半成品视图
	return c.ec.Set(ctx, c.key(kind, competitionId), string(data), expiration)
}

func (c *rankingCache) Get(ctx context.Context, kind domain.Kind, competitionId int64) ([]domain.Entry, error) {
	val := c.ec.Get(ctx, c.key(kind, competitionId))
	if val.KeyNotFound() {
		return nil, ErrRankingNotCached
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var entries []domain.Entry
	err := json.Unmarshal([]byte(val.Val.(string)), &entries)
	return entries, errors.Wrap(err, "反序列化榜单失败")
}

func (c *rankingCache) Del(ctx context.Context, kind domain.Kind, competitionId int64) error {
	_, err := c.ec.Delete(ctx, c.key(kind, competitionId))
	return err
}

func (c *rankingCache) key(kind domain.Kind, competitionId int64) string {
	return fmt.Sprintf("%s:%d", kind, competitionId)
}
