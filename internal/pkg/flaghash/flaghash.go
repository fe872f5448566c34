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

// Package flaghash 负责 flag 的加盐哈希与校验。
// flag 明文只在内存中短暂存在，落库的永远是哈希和盐。
package flaghash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const saltLen = 16

// Hash 对 flag 做规范化之后加盐哈希。
// salt 传空字符串时会生成一个新的随机盐。
func Hash(flag, salt string, caseSensitive bool) (hash string, outSalt string, err error) {
	if salt == "" {
		buf := make([]byte, saltLen)
		if _, err = rand.Read(buf); err != nil {
			return "", "", err
		}
		salt = hex.EncodeToString(buf)
	}
	sum := sha256.Sum256([]byte(normalize(flag, caseSensitive) + salt))
	return hex.EncodeToString(sum[:]), salt, nil
}

// Verify 用存储的盐重新计算哈希并做恒定时间比较。
// 存储材料不合法一律返回 false，绝不向调用方抛错，
// 保证校验失败和 flag 答错在调用方视角不可区分。
func Verify(submitted, storedHash, storedSalt string, caseSensitive bool) bool {
	if storedHash == "" || storedSalt == "" {
		return false
	}
	want, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}
	sum := sha256.Sum256([]byte(normalize(submitted, caseSensitive) + storedSalt))
	// 长度不一致直接返回 false。长度本身不是秘密，这个捷径是可接受的
	if len(want) != len(sum) {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}

func normalize(flag string, caseSensitive bool) string {
	flag = strings.TrimSpace(flag)
	if !caseSensitive {
		flag = strings.ToLower(flag)
	}
	return flag
}
