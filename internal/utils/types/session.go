package types

// LoginSession is the server-side record backing an issued session token,
// keyed session:<user_id>:<jti> in redis with the token's TTL.
type LoginSession struct {
	UserId   string `json:"user_id"`
	JTI      string `json:"jti"`
	IssueAt  int64  `json:"issue_at"`
	ExpireAt int64  `json:"expire_at"`
	Status   string `json:"status"`
}
