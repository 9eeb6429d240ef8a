package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FieldKey names a slot in a project's field bag. The set is closed:
// every key a stage requirement may reference is declared here.
type FieldKey string

const (
	FieldContactInfo        FieldKey = "contactInfo"
	FieldInitialRequest     FieldKey = "initialRequest"
	FieldMeasurementDone    FieldKey = "measurementDone"
	FieldFloorPlan          FieldKey = "floorPlan"
	FieldEstimateReady      FieldKey = "estimateReady"
	FieldEstimateApproved   FieldKey = "estimateApproved"
	FieldContractSigned     FieldKey = "contractSigned"
	FieldPrepaymentReceived FieldKey = "prepaymentReceived"
	FieldMaterialsOrdered   FieldKey = "materialsOrdered"
	FieldDeliveryScheduled  FieldKey = "deliveryScheduled"
	FieldRoughDonePct       FieldKey = "roughDonePct"
	FieldInspectionPassed   FieldKey = "inspectionPassed"
	FieldFinishingDonePct   FieldKey = "finishingDonePct"
	FieldQualityCheck       FieldKey = "qualityCheck"
	FieldClientAccepted     FieldKey = "clientAccepted"
	FieldFinalPayment       FieldKey = "finalPayment"
	FieldWarrantyIssued     FieldKey = "warrantyIssued"
	FieldNotes              FieldKey = "notes"
)

// KnownFields lists every declared field key.
var KnownFields = []FieldKey{
	FieldContactInfo, FieldInitialRequest,
	FieldMeasurementDone, FieldFloorPlan,
	FieldEstimateReady, FieldEstimateApproved,
	FieldContractSigned, FieldPrepaymentReceived,
	FieldMaterialsOrdered, FieldDeliveryScheduled,
	FieldRoughDonePct, FieldInspectionPassed,
	FieldFinishingDonePct, FieldQualityCheck,
	FieldClientAccepted, FieldFinalPayment,
	FieldWarrantyIssued,
	FieldNotes,
}

// IsKnownField reports whether k is a declared field key.
func IsKnownField(k FieldKey) bool {
	for _, f := range KnownFields {
		if f == k {
			return true
		}
	}
	return false
}

type FieldValueKind int

const (
	FieldAbsent FieldValueKind = iota
	FieldBool
	FieldNumber
	FieldText
)

// FieldValue is a tagged scalar: bool, number, string or absent. The zero
// value is absent, so missing bag entries evaluate falsy without nil checks.
type FieldValue struct {
	kind FieldValueKind
	b    bool
	n    float64
	s    string
}

func Bool(v bool) FieldValue      { return FieldValue{kind: FieldBool, b: v} }
func Number(v float64) FieldValue { return FieldValue{kind: FieldNumber, n: v} }
func Text(v string) FieldValue    { return FieldValue{kind: FieldText, s: v} }

func (v FieldValue) Kind() FieldValueKind { return v.kind }

// IsTrue reports strict boolean truth: only a bool true qualifies.
func (v FieldValue) IsTrue() bool { return v.kind == FieldBool && v.b }

// Number returns the numeric value and whether the field holds a number.
func (v FieldValue) Number() (float64, bool) {
	if v.kind != FieldNumber {
		return 0, false
	}
	return v.n, true
}

// Text returns the string value and whether the field holds text.
func (v FieldValue) Text() (string, bool) {
	if v.kind != FieldText {
		return "", false
	}
	return v.s, true
}

// Truthy reports whether the value is present and not false, zero or empty.
func (v FieldValue) Truthy() bool {
	switch v.kind {
	case FieldBool:
		return v.b
	case FieldNumber:
		return v.n != 0
	case FieldText:
		return v.s != ""
	}
	return false
}

func (v FieldValue) String() string {
	switch v.kind {
	case FieldBool:
		return strconv.FormatBool(v.b)
	case FieldNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case FieldText:
		return v.s
	}
	return ""
}

// FieldValueOf converts a decoded scalar (bool, int, float64 or string)
// into a FieldValue. Unsupported types yield an absent value.
func FieldValueOf(v any) (FieldValue, error) {
	switch t := v.(type) {
	case nil:
		return FieldValue{}, nil
	case bool:
		return Bool(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case string:
		return Text(t), nil
	}
	return FieldValue{}, fmt.Errorf("unsupported field value type %T", v)
}

// ParseFieldValue interprets raw user input: true/false become booleans,
// numerics become numbers, anything else is text.
func ParseFieldValue(raw string) FieldValue {
	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	return Text(raw)
}

// MarshalJSON emits the bare scalar; absent values marshal as null.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case FieldBool:
		return json.Marshal(v.b)
	case FieldNumber:
		return json.Marshal(v.n)
	case FieldText:
		return json.Marshal(v.s)
	}
	return []byte("null"), nil
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fv, err := FieldValueOf(raw)
	if err != nil {
		return err
	}
	*v = fv
	return nil
}

// FieldBag is a project's sparse field mapping. Lookups of missing keys
// return an absent FieldValue.
type FieldBag map[FieldKey]FieldValue

// Clone copies the bag; a nil bag clones to an empty, writable one.
func (b FieldBag) Clone() FieldBag {
	out := make(FieldBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
