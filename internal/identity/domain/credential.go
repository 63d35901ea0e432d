package domain

import "encoding/base64"

// 固定盐值，与存量种子数据的凭证格式保持一致
const credentialSalt = "vogue_vault_salt"

// TransformPassword 计算凭证变换。
//
// 注意：这是可逆编码加固定盐，不是密码学意义上的单向散列，
// 不提供任何真实保护。保留它只为与存量用户数据兼容，
// 生产部署必须替换为 bcrypt/argon2 并对存量凭证做迁移。
func TransformPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + credentialSalt))
}

// VerifyPassword 校验明文密码与存储凭证是否匹配
func VerifyPassword(password, stored string) bool {
	return TransformPassword(password) == stored
}
