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

package service

import (
	"context"
	"testing"

	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	repomocks "github.com/ctfarena/arena/internal/challenge/internal/repository/mocks"
	"github.com/ctfarena/arena/internal/pkg/flaghash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Save_HashesFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockChallengeRepository(ctrl)
	var saved domain.Challenge
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch domain.Challenge) (int64, error) {
			saved = ch
			return 1, nil
		})
	svc := NewService(repo)

	id, err := svc.Save(context.Background(), domain.Challenge{
		CompetitionID: 1,
		Title:         "Web 签到",
		Points:        100,
	}, "flag{s3cret}")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	// 落库的是哈希和盐，绝不是明文
	assert.NotEmpty(t, saved.FlagHash)
	assert.NotEmpty(t, saved.FlagSalt)
	assert.NotContains(t, saved.FlagHash, "s3cret")
	assert.True(t, flaghash.Verify("flag{s3cret}", saved.FlagHash, saved.FlagSalt, false))
	assert.False(t, flaghash.Verify("flag{wrong}", saved.FlagHash, saved.FlagSalt, false))
}

func TestService_Save_KeepsOldFlagMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockChallengeRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(2)).
		Return(domain.Challenge{
			ID:       2,
			FlagHash: "oldhash",
			FlagSalt: "oldsalt",
		}, nil)
	var saved domain.Challenge
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ch domain.Challenge) (int64, error) {
			saved = ch
			return 2, nil
		})
	svc := NewService(repo)

	// 不传 flag 明文表示只改元数据
	_, err := svc.Save(context.Background(), domain.Challenge{
		ID:     2,
		Title:  "改个标题",
		Points: 200,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "oldhash", saved.FlagHash)
	assert.Equal(t, "oldsalt", saved.FlagSalt)
}
