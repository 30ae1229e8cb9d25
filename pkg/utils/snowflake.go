package utils

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// InitSnowflake sets the node id of the process wide generator. Every
// instance of the api has to run with a distinct node id.
func InitSnowflake(nodeId int64) error {
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return err
	}
	nodeOnce.Do(func() {})
	node = n
	return nil
}

// GenerateID returns the next entity id, node 1 unless InitSnowflake ran.
func GenerateID() int64 {
	nodeOnce.Do(func() {
		node, _ = snowflake.NewNode(1)
	})
	return node.Generate().Int64()
}
