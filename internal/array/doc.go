// Package array holds the numeric containers the plotting helpers operate on:
// 2-D images (Matrix), 1-D line data (Series), complex fields (Complex), colour
// fields (RGB) and the shared scale bounds (Limits).
package array
