package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordMapper(t *testing.T) {
	req := require.New(t)

	row := RecordMapper("user:u1", []byte(`{"id":"u1","username":"alice","admin":false}`))
	req.Equal("USER", row.Type)
	req.Equal("alice", row.Detail)

	row = RecordMapper("msg:c1:0001:m1", []byte(`{"id":"m1","content":"hello"}`))
	req.Equal("MSG", row.Type)
	req.Equal("hello", row.Detail)

	row = RecordMapper("username:alice", []byte("u1"))
	req.Equal("INDEX", row.Type)
	req.Equal("u1", row.Detail)
}
