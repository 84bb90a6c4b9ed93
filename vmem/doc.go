// Package vmem wraps the two operating-system calls every region in this
// module is built from: reserve-and-commit a span of anonymous memory, and
// release it back to the OS.
//
// There is one implementation per target OS, selected at build time:
// mmap/munmap on POSIX (vmem_unix.go), VirtualAlloc/VirtualFree on Windows
// (vmem_windows.go), and a fallback that always fails on anything else
// (vmem_fallback.go). Callers never see the difference.
package vmem
