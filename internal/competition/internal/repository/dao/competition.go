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

type CompetitionDAO interface {
	FindById(ctx context.Context, id int64) (Competition, error)
	Save(ctx context.Context, c Competition) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	FindRegistration(ctx context.Context, competitionId, uid int64) (Registration, error)
	SaveRegistration(ctx context.Context, r Registration) (int64, error)
}

type GORMCompetitionDAO struct {
	db *egorm.Component
}

func NewGORMCompetitionDAO(db *egorm.Component) CompetitionDAO {
	return &GORMCompetitionDAO{db: db}
}

func (g *GORMCompetitionDAO) FindById(ctx context.Context, id int64) (Competition, error) {
	var res Competition
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMCompetitionDAO) Save(ctx context.Context, c Competition) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	c.Ctime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       c.Name,
			"mode":       c.Mode,
			"start_time": c.StartTime,
			"end_time":   c.EndTime,
			"utime":      c.Utime,
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *GORMCompetitionDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Competition{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMCompetitionDAO) FindRegistration(ctx context.Context, competitionId, uid int64) (Registration, error) {
	var res Registration
	err := g.db.WithContext(ctx).
		Where("competition_id = ? AND uid = ?", competitionId, uid).
		First(&res).Error
	return res, err
}

func (g *GORMCompetitionDAO) SaveRegistration(ctx context.Context, r Registration) (int64, error) {
	now := time.Now().UnixMilli()
	r.Utime = now
	r.Ctime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "competition_id"}, {Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"team_id": r.TeamId,
			"status":  r.Status,
			"utime":   r.Utime,
		}),
	}).Create(&r).Error
	return r.Id, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Competition{}, &Registration{})
}

type Competition struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Name   string `gorm:"type:varchar(256)"`
	Mode   uint8
	Status uint8 `gorm:"index"`
	// 毫秒时间戳
	StartTime int64
	EndTime   int64
	Ctime     int64
	Utime     int64
}

func (Competition) TableName() string {
	return "competitions"
}

// Registration 报名记录，一个用户在一场比赛内只有一条
type Registration struct {
	Id            int64 `gorm:"primaryKey,autoIncrement"`
	CompetitionId int64 `gorm:"uniqueIndex:competition_uid"`
	Uid           int64 `gorm:"uniqueIndex:competition_uid"`
	TeamId        int64 `gorm:"index"`
	Status        uint8
	Ctime         int64
	Utime         int64
}

func (Registration) TableName() string {
	return "competition_registrations"
}
