//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端模拟移动模式（鼠标左键拖动视为触摸）
const MobileEmulateEnv = "CAROUSEL_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 CAROUSEL_MOBILE_EMULATE=1（用于本地调试触摸手势）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
