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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./submission.go -package=daomocks -destination=./mocks/submission.mock.go SubmissionDAO

// ErrDuplicateScore (challenge_id, actor_id) 撞了唯一索引，
// 即并发提交里输掉竞争的那一个
var ErrDuplicateScore = errors.New("该题已有得分记录")

type SubmissionDAO interface {
	Create(ctx context.Context, sub Submission) (int64, error)
	HasCorrect(ctx context.Context, challengeId, actorId int64) (bool, error)
	// AwardScore 同一个事务里写 Score 并累加题目的 solve_cnt
	AwardScore(ctx context.Context, sc Score) error
	// FindCorrectWithoutScore 找出答对了却没有对应得分的提交，供对账任务补偿
	FindCorrectWithoutScore(ctx context.Context, limit int) ([]Submission, error)
}

type GORMSubmissionDAO struct {
	db   *egorm.Component
	node *snowflake.Node
}

func NewGORMSubmissionDAO(db *egorm.Component, node *snowflake.Node) SubmissionDAO {
	return &GORMSubmissionDAO{db: db, node: node}
}

func (g *GORMSubmissionDAO) Create(ctx context.Context, sub Submission) (int64, error) {
	now := time.Now().UnixMilli()
	// 预生成 id，补偿重放时天然幂等
	sub.Id = g.node.Generate().Int64()
	sub.Ctime, sub.Utime = now, now
	err := g.db.WithContext(ctx).Create(&sub).Error
	return sub.Id, err
}

func (g *GORMSubmissionDAO) HasCorrect(ctx context.Context, challengeId, actorId int64) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Submission{}).
		Where("challenge_id = ? AND actor_id = ? AND correct = ?", challengeId, actorId, true).
		Count(&cnt).Error
	return cnt > 0, err
}

func (g *GORMSubmissionDAO) AwardScore(ctx context.Context, sc Score) error {
	now := time.Now().UnixMilli()
	sc.Ctime, sc.Utime = now, now
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Create(&sc).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicateScore
				}
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateScore
			}
			return err
		}
		// solve_cnt 跟 Score 同事务落库，保证两者一致
		return tx.Model(&Challenge{}).Where("id = ?", sc.ChallengeId).
			UpdateColumn("solve_cnt", gorm.Expr("solve_cnt + 1")).Error
	})
}

func (g *GORMSubmissionDAO) FindCorrectWithoutScore(ctx context.Context, limit int) ([]Submission, error) {
	var subs []Submission
	// 按 (challenge_id, actor_id) 匹配而不是 submission_id，
	// 竞争输家的提交对应的得分挂在赢家的提交上，不算缺失
	err := g.db.WithContext(ctx).
		Where("correct = ? AND NOT EXISTS (SELECT 1 FROM scores WHERE scores.challenge_id = submissions.challenge_id AND scores.actor_id = submissions.actor_id)",
			true).
		Order("id ASC").Limit(limit).Find(&subs).Error
	return subs, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Submission{}, &Score{})
}

// Submission 提交流水，只追加。绝不存 flag 原文
type Submission struct {
	Id            int64  `gorm:"primaryKey;comment:雪花ID，提交时预生成"`
	CompetitionId int64  `gorm:"not null;index:idx_competition_id"`
	ChallengeId   int64  `gorm:"not null;index:idx_challenge_actor"`
	ActorId       int64  `gorm:"not null;index:idx_challenge_actor;comment:计分主体，个人赛为用户ID，团队赛为队伍ID"`
	Uid           int64  `gorm:"not null;index:idx_uid;comment:提交人"`
	Correct       bool   `gorm:"not null"`
	Ip            string `gorm:"type:varchar(64);not null;comment:审计元数据"`
	UserAgent     string `gorm:"type:varchar(512);not null;comment:审计元数据"`
	SubmittedAt   int64  `gorm:"not null;comment:UTC Unix毫秒数"`
	Ctime         int64
	Utime         int64
}

// Score 计分账本，只追加。唯一索引是并发双写的最终裁决
type Score struct {
	Id            int64 `gorm:"primaryKey;autoIncrement"`
	ChallengeId   int64 `gorm:"not null;uniqueIndex:unq_challenge_actor"`
	ActorId       int64 `gorm:"not null;uniqueIndex:unq_challenge_actor"`
	Uid           int64 `gorm:"not null;index:idx_uid"`
	CompetitionId int64 `gorm:"not null;index:idx_competition_id"`
	SubmissionId  int64 `gorm:"not null;comment:关联的提交，submissions.id"`
	Points        int64 `gorm:"not null"`
	SolvedAt      int64 `gorm:"not null;comment:UTC Unix毫秒数"`
	Ctime         int64
	Utime         int64
}

// Challenge 只为在计分事务里更新 solve_cnt，表结构归 challenge 模块所有
type Challenge struct {
	Id       int64
	SolveCnt int64
}

func (Challenge) TableName() string {
	return "challenges"
}
