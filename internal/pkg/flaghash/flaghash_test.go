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

package flaghash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		flag          string
		submitted     string
		caseSensitive bool
		want          bool
	}{
		{
			name:      "原文提交",
			flag:      "flag{abc}",
			submitted: "flag{abc}",
			want:      true,
		},
		{
			name:      "大小写不敏感时大写提交",
			flag:      "flag{abc}",
			submitted: "FLAG{ABC}",
			want:      true,
		},
		{
			name:      "前后空白会被裁剪",
			flag:      "flag{x}",
			submitted: "  FLAG{X}  ",
			want:      true,
		},
		{
			name:          "大小写敏感时大写提交",
			flag:          "flag{x}",
			submitted:     "FLAG{X}",
			caseSensitive: true,
			want:          false,
		},
		{
			name:          "大小写敏感时原文提交",
			flag:          "Flag{X}",
			submitted:     "Flag{X}",
			caseSensitive: true,
			want:          true,
		},
		{
			name:      "答错",
			flag:      "flag{abc}",
			submitted: "flag{abd}",
			want:      false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hash, salt, err := Hash(tc.flag, "", tc.caseSensitive)
			require.NoError(t, err)
			require.NotEmpty(t, salt)
			assert.Equal(t, tc.want, Verify(tc.submitted, hash, salt, tc.caseSensitive))
		})
	}
}

func TestHashReusesSalt(t *testing.T) {
	t.Parallel()
	h1, salt, err := Hash("flag{abc}", "", false)
	require.NoError(t, err)
	h2, salt2, err := Hash("flag{abc}", salt, false)
	require.NoError(t, err)
	assert.Equal(t, salt, salt2)
	assert.Equal(t, h1, h2)
}

func TestVerifyMalformedMaterial(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		hash string
		salt string
	}{
		{
			name: "空哈希",
			hash: "",
			salt: "abcd",
		},
		{
			name: "空盐",
			hash: "abcd",
			salt: "",
		},
		{
			name: "哈希不是hex",
			hash: "zzzz",
			salt: "abcd",
		},
		{
			name: "哈希长度不对",
			hash: "abcd",
			salt: "abcd",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Verify("flag{abc}", tc.hash, tc.salt, false))
			})
		})
	}
}
