package progress

import (
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/xstraven/brasscoach/constants"
)

func newClient() (*dynamodb.DynamoDB, error) {
	cfg := &aws.Config{}
	if endpoint := os.Getenv("DYNAMO_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = &endpoint
		cfg.Region = aws.String("localhost")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

// FetchRemote pulls the stored best scores for up to 100 progress keys
// from the shared table.
func FetchRemote(keys []string) (Records, error) {
	res := Records{}
	if len(keys) == 0 {
		return res, nil
	}
	if len(keys) > 100 {
		return nil, errors.Errorf("too many keys for one batch: %v", len(keys))
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}

	var attrKeys []map[string]*dynamodb.AttributeValue
	for _, key := range keys {
		attrKeys = append(attrKeys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		})
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.GetProgressTable(): {Keys: attrKeys},
		},
	}
	out, err := client.BatchGetItem(input)
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}

	for _, item := range out.Responses[constants.GetProgressTable()] {
		pk := item["PK"]
		best := item["Best"]
		if pk == nil || pk.S == nil || best == nil || best.N == nil {
			continue
		}
		score, err := strconv.ParseFloat(*best.N, 64)
		if err != nil {
			continue
		}
		res[*pk.S] = score
	}
	return res, nil
}

// PushRemote mirrors a local best score into the shared table.
func PushRemote(key string, score float64) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetProgressTable()),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":   {S: aws.String(key)},
			"Best": {N: aws.String(strconv.FormatFloat(score, 'f', 1, 64))},
		},
	}
	_, err = client.PutItem(input)
	return errors.Wrap(err, "error from DynamoDB")
}
