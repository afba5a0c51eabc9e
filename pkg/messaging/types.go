package messaging

import (
	"github.com/google/uuid"

	"github.com/virtscope/vm-inventory/pkg/types"
)

// ChangeTopic names one inventory change stream.
type ChangeTopic string

const (
	VmsUpsertedTopic ChangeTopic = "vm_upserted"
	VmsDeletedTopic  ChangeTopic = "vm_deleted"
)

// UpsertMessage carries a batch of new or changed records.
type UpsertMessage struct {
	MessageId string     `json:"messageId"`
	Items     []types.VM `json:"items"`
}

// DeleteMessage carries the ids of removed records.
type DeleteMessage struct {
	MessageId string   `json:"messageId"`
	Ids       []string `json:"ids"`
}

func NewUpsertMessage(items []types.VM) UpsertMessage {
	return UpsertMessage{MessageId: uuid.NewString(), Items: items}
}

func NewDeleteMessage(ids []string) DeleteMessage {
	return DeleteMessage{MessageId: uuid.NewString(), Ids: ids}
}
