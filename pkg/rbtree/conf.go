package rbtree

import (
	"fmt"
	"strings"

	"github.com/scottcagno/rbmap/pkg/logger"
)

// RBTreeConfig holds configuration settings for an RBTree instance
type RBTreeConfig struct {
	Allocator       Allocator      // backs nodes and key/value buffers
	Logger          *logger.Logger // logger
	CheckInvariants bool           // run Verify after every insert and panic on failure
}

func (conf *RBTreeConfig) String() string {
	var sb strings.Builder
	sb.WriteString("Allocator: ")
	sb.WriteString(fmt.Sprintf("%T", conf.Allocator))
	sb.WriteString("\n")
	sb.WriteString("Logger: ")
	if conf.Logger != nil {
		sb.WriteString(conf.Logger.Level().String())
	} else {
		sb.WriteString("<nil>")
	}
	sb.WriteString("\n")
	sb.WriteString("CheckInvariants: ")
	if conf.CheckInvariants {
		sb.WriteString("true")
	} else {
		sb.WriteString("false")
	}
	return sb.String()
}

// checkRBTreeConfig fills in any missing options. The caller's config is
// never modified.
func checkRBTreeConfig(conf *RBTreeConfig) *RBTreeConfig {
	if conf == nil {
		return &RBTreeConfig{
			Allocator: HeapAllocator,
			Logger:    logger.DefaultLogger,
		}
	}
	c := *conf
	if c.Allocator == nil {
		c.Allocator = HeapAllocator
	}
	if c.Logger == nil {
		c.Logger = logger.DefaultLogger
	}
	return &c
}
