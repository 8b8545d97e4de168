//go:build mobile

package utils

// IsMobile 移动端编译时始终为 true
func IsMobile() bool {
	return true
}
