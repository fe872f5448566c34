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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeDAO interface {
	FindById(ctx context.Context, id int64) (Challenge, error)
	ListByCompetition(ctx context.Context, competitionId int64, offset, limit int) ([]Challenge, error)
	Save(ctx context.Context, ch Challenge) (int64, error)
}

type GORMChallengeDAO struct {
	db *egorm.Component
}

func NewGORMChallengeDAO(db *egorm.Component) ChallengeDAO {
	return &GORMChallengeDAO{db: db}
}

func (g *GORMChallengeDAO) FindById(ctx context.Context, id int64) (Challenge, error) {
	var res Challenge
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMChallengeDAO) ListByCompetition(ctx context.Context, competitionId int64, offset, limit int) ([]Challenge, error) {
	var res []Challenge
	err := g.db.WithContext(ctx).
		Where("competition_id = ?", competitionId).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMChallengeDAO) Save(ctx context.Context, ch Challenge) (int64, error) {
	now := time.Now().UnixMilli()
	ch.Utime = now
	ch.Ctime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":          ch.Title,
			"points":         ch.Points,
			"flag_hash":      ch.FlagHash,
			"flag_salt":      ch.FlagSalt,
			"case_sensitive": ch.CaseSensitive,
			"visible":        ch.Visible,
			"utime":          ch.Utime,
		}),
	}).Create(&ch).Error
	return ch.Id, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Challenge{})
}

type Challenge struct {
	Id            int64 `gorm:"primaryKey,autoIncrement"`
	CompetitionId int64 `gorm:"index"`
	Title         string
	Points        int64
	// 只存哈希和盐，flag 明文从不落库
	FlagHash      string `gorm:"type:varchar(64)"`
	FlagSalt      string `gorm:"type:varchar(32)"`
	CaseSensitive bool
	Visible       bool
	// SolveCnt 由提交模块的计分事务递增
	SolveCnt int64
	Ctime    int64
	Utime    int64
}

func (Challenge) TableName() string {
	return "challenges"
}
