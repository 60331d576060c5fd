package domain

// AdminSession is the stored admin login marker
type AdminSession struct {
	OK bool  `json:"ok"`
	At int64 `json:"at"` // epoch ms
}
