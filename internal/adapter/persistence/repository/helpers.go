package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds, so stored timestamps
// sort lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func timeToString(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// getItem loads the item with the given id into out. It reports false when
// the item does not exist.
func getItem(ctx context.Context, ddb *dynamodb.Client, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

// scanAll reads every page of a scan and decodes the items into T.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput) ([]T, error) {
	var items []T
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// queryAll reads every page of a query and decodes the items into T.
func queryAll[T any](ctx context.Context, ddb *dynamodb.Client, in *dynamodb.QueryInput) ([]T, error) {
	var items []T
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// porCriacao sorts items by creation time, oldest first. Scans return items
// in hash order; listings are expected in creation order.
func porCriacao[T any](items []T, criadoEm func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return criadoEm(items[i]) < criadoEm(items[j])
	})
}

// condicaoFalhou reports whether a transaction was cancelled because one of
// its condition checks failed.
func condicaoFalhou(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if aws.ToString(r.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
