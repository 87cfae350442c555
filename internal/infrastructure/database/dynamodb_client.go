package database

import (
	"context"
	"errors"
	"log"
	"time"

	"hotel_reservas/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// With DYNAMODB_ENDPOINT set (e.g. http://dynamodb:8000) it targets DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// EnsureTables creates the tables the repositories expect when they do not
// exist yet. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, t config.Tabelas) error {
	for _, in := range tableDefinitions(t) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			continue
		}
		if err != nil {
			return err
		}
		log.Printf("[database][dynamodb] tabela criada table=%s", aws.ToString(in.TableName))

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: in.TableName}, tableWaitTimeout); err != nil {
			return err
		}
	}
	return nil
}

func tableDefinitions(t config.Tabelas) []*dynamodb.CreateTableInput {
	byID := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}
	}

	reservas := byID(t.Reservas)
	reservas.AttributeDefinitions = append(reservas.AttributeDefinitions,
		types.AttributeDefinition{AttributeName: aws.String("quarto_id"), AttributeType: types.ScalarAttributeTypeS},
		types.AttributeDefinition{AttributeName: aws.String("hospede_id"), AttributeType: types.ScalarAttributeTypeS},
	)
	reservas.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{
		gsi("quarto_id-index", "quarto_id"),
		gsi("hospede_id-index", "hospede_id"),
	}

	return []*dynamodb.CreateTableInput{
		byID(t.Quartos),
		byID(t.Hospedes),
		reservas,
		{
			TableName:   aws.String(t.Unicidade),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("chave"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("chave"), KeyType: types.KeyTypeHash},
			},
		},
	}
}

func gsi(name, attr string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
