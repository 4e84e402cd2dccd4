package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table, in-memory DynamoAPI. It understands the
// condition and key expressions the repositories emit and nothing more.
type fakeDynamo struct {
	mu     sync.Mutex
	items  map[string]map[string]types.AttributeValue
	putErr error
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func itemID(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func ccf() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) checkCondition(cond string, current map[string]types.AttributeValue, values map[string]types.AttributeValue) bool {
	switch cond {
	case "":
		return true
	case "attribute_not_exists(#id)":
		return current == nil
	case "attribute_exists(#id)":
		return current != nil
	case "attribute_exists(#id) AND #revision = :expected":
		return current != nil && numEqual(current["revision"], values[":expected"])
	case "attribute_exists(#id) AND (attribute_not_exists(#revision) OR #revision = :expected)":
		if current == nil {
			return false
		}
		if _, ok := current["revision"]; !ok {
			return true
		}
		return numEqual(current["revision"], values[":expected"])
	}
	panic(fmt.Sprintf("fakeDynamo: unsupported condition %q", cond))
}

func numEqual(a, b types.AttributeValue) bool {
	an, ok1 := a.(*types.AttributeValueMemberN)
	bn, ok2 := b.(*types.AttributeValueMemberN)
	return ok1 && ok2 && an.Value == bn.Value
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := itemID(in.Item)
	if !f.checkCondition(aws.ToString(in.ConditionExpression), f.items[id], in.ExpressionAttributeValues) {
		return nil, ccf()
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[itemID(in.Key)]}, nil
}

// UpdateItem supports "SET #a = :a, #b = :b" expressions.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := itemID(in.Key)
	current := f.items[id]
	if !f.checkCondition(aws.ToString(in.ConditionExpression), current, in.ExpressionAttributeValues) {
		return nil, ccf()
	}
	next := make(map[string]types.AttributeValue, len(current)+2)
	for k, v := range current {
		next[k] = v
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(expr, ",") {
		parts := strings.SplitN(assignment, "=", 2)
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		next[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	f.items[id] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

// Query supports "attr = :v" on any attribute; IndexName is ignored.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), "=", 2)
	attr := strings.TrimSpace(parts[0])
	want := in.ExpressionAttributeValues[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, id := range f.sortedIDs() {
		item := f.items[id]
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(f.items))
	for _, id := range f.sortedIDs() {
		out = append(out, f.items[id])
	}
	return &dynamodb.ScanOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) sortedIDs() []string {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
