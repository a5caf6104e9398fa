package wot

import (
	"encoding/json"

	"github.com/sifis-home/wot-go/flatjson"
)

// Operation is a WoT form operation name.
type Operation string

const (
	OpReadProperty            Operation = "readproperty"
	OpWriteProperty           Operation = "writeproperty"
	OpObserveProperty         Operation = "observeproperty"
	OpUnobserveProperty       Operation = "unobserveproperty"
	OpReadAllProperties       Operation = "readallproperties"
	OpWriteAllProperties      Operation = "writeallproperties"
	OpReadMultipleProperties  Operation = "readmultipleproperties"
	OpWriteMultipleProperties Operation = "writemultipleproperties"
	OpObserveAllProperties    Operation = "observeallproperties"
	OpUnobserveAllProperties  Operation = "unobserveallproperties"
	OpInvokeAction            Operation = "invokeaction"
	OpQueryAction             Operation = "queryaction"
	OpCancelAction            Operation = "cancelaction"
	OpQueryAllActions         Operation = "queryallactions"
	OpSubscribeEvent          Operation = "subscribeevent"
	OpUnsubscribeEvent        Operation = "unsubscribeevent"
	OpSubscribeAllEvents      Operation = "subscribeallevents"
	OpUnsubscribeAllEvents    Operation = "unsubscribeallevents"
)

var knownOperations = map[Operation]struct{}{
	OpReadProperty:            {},
	OpWriteProperty:           {},
	OpObserveProperty:         {},
	OpUnobserveProperty:       {},
	OpReadAllProperties:       {},
	OpWriteAllProperties:      {},
	OpReadMultipleProperties:  {},
	OpWriteMultipleProperties: {},
	OpObserveAllProperties:    {},
	OpUnobserveAllProperties:  {},
	OpInvokeAction:            {},
	OpQueryAction:             {},
	OpCancelAction:            {},
	OpQueryAllActions:         {},
	OpSubscribeEvent:          {},
	OpUnsubscribeEvent:        {},
	OpSubscribeAllEvents:      {},
	OpUnsubscribeAllEvents:    {},
}

// UnmarshalJSON rejects strings outside the operation vocabulary.
func (op *Operation) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return flatjson.Errorf(flatjson.SchemaViolation, "op", "expected a string")
	}
	if _, ok := knownOperations[Operation(s)]; !ok {
		return flatjson.Errorf(flatjson.UnknownEnumVariant, "op", "unknown operation %q", s)
	}
	*op = Operation(s)
	return nil
}
