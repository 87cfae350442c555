package repository

import (
	"context"
	"log"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"
	"hotel_reservas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type camaItem struct {
	ID   string `dynamodbav:"id"`
	Tipo string `dynamodbav:"tipo"`
}

type quartoItem struct {
	ID                string     `dynamodbav:"id"`
	Numero            int        `dynamodbav:"numero"`
	Capacidade        int        `dynamodbav:"capacidade"`
	Tipo              string     `dynamodbav:"tipo"`
	PrecoPorDiaria    string     `dynamodbav:"preco_por_diaria"`
	TemFrigobar       bool       `dynamodbav:"tem_frigobar"`
	TemCafeDaManha    bool       `dynamodbav:"tem_cafe_da_manha"`
	TemArCondicionado bool       `dynamodbav:"tem_ar_condicionado"`
	TemTV             bool       `dynamodbav:"tem_tv"`
	Disponibilidade   string     `dynamodbav:"disponibilidade"`
	Camas             []camaItem `dynamodbav:"camas"`
	CriadoEm          string     `dynamodbav:"criado_em"`
	AtualizadoEm      string     `dynamodbav:"atualizado_em"`
}

// QuartoDynamoRepository persists rooms in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Room numbers are unique through guard items in the uniqueness table.
type QuartoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	unicidade unicidade
}

var _ interfaces.IQuartoRepository = (*QuartoDynamoRepository)(nil)

func NewQuartoDynamoRepository(ddb *dynamodb.Client, tableName, unicidadeTable string) *QuartoDynamoRepository {
	return &QuartoDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		unicidade: unicidade{ddb: ddb, tableName: unicidadeTable},
	}
}

func (r *QuartoDynamoRepository) Criar(ctx context.Context, q *entities.Quarto) (*entities.Quarto, error) {
	it := toQuartoItem(q.ToData())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	err = r.unicidade.transacao(ctx,
		types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		r.unicidade.reservar(chaveNumeroQuarto(it.Numero), it.ID),
	)
	if condicaoFalhou(err) {
		log.Printf("[quartos][repository] numero duplicado numero=%d id=%s", it.Numero, it.ID)
		return nil, usecase.ErrNumeroQuartoDuplicado
	}
	if err != nil {
		return nil, err
	}
	return fromQuartoItem(it), nil
}

func (r *QuartoDynamoRepository) BuscarPorID(ctx context.Context, id string) (*entities.Quarto, error) {
	var it quartoItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return nil, err
	}
	return fromQuartoItem(it), nil
}

// BuscarPorNumero resolves the number through its guard item, which is read
// consistently, then loads the room.
func (r *QuartoDynamoRepository) BuscarPorNumero(ctx context.Context, numero int) (*entities.Quarto, error) {
	id, err := r.unicidade.dono(ctx, chaveNumeroQuarto(numero))
	if err != nil || id == "" {
		return nil, err
	}
	return r.BuscarPorID(ctx, id)
}

func (r *QuartoDynamoRepository) BuscarTodos(ctx context.Context) ([]*entities.Quarto, error) {
	items, err := scanAll[quartoItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromQuartoItems(items), nil
}

func (r *QuartoDynamoRepository) BuscarPorDisponibilidade(ctx context.Context, d entities.Disponibilidade) ([]*entities.Quarto, error) {
	items, err := scanAll[quartoItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("#disponibilidade = :d"),
		ExpressionAttributeNames: map[string]string{"#disponibilidade": "disponibilidade"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d": &types.AttributeValueMemberS{Value: string(d)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromQuartoItems(items), nil
}

// Atualizar overwrites the room. When the number changes the old guard is
// released and the new one claimed in the same transaction.
func (r *QuartoDynamoRepository) Atualizar(ctx context.Context, id string, q *entities.Quarto) (*entities.Quarto, error) {
	d := q.ToData()
	d.ID = id
	it := toQuartoItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	var anterior quartoItem
	existia, err := getItem(ctx, r.ddb, r.tableName, id, &anterior)
	if err != nil {
		return nil, err
	}

	itens := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.tableName), Item: av}},
		r.unicidade.reservar(chaveNumeroQuarto(it.Numero), id),
	}
	if existia && anterior.Numero != it.Numero {
		itens = append(itens, r.unicidade.liberar(chaveNumeroQuarto(anterior.Numero), id))
	}

	err = r.unicidade.transacao(ctx, itens...)
	if condicaoFalhou(err) {
		log.Printf("[quartos][repository] numero duplicado numero=%d id=%s", it.Numero, id)
		return nil, usecase.ErrNumeroQuartoDuplicado
	}
	if err != nil {
		return nil, err
	}
	return fromQuartoItem(it), nil
}

func (r *QuartoDynamoRepository) Deletar(ctx context.Context, id string) error {
	var it quartoItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return err
	}
	return r.unicidade.transacao(ctx,
		types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: idKey(id)}},
		r.unicidade.liberar(chaveNumeroQuarto(it.Numero), id),
	)
}

func (r *QuartoDynamoRepository) ExisteNumero(ctx context.Context, numero int, idExcluir string) (bool, error) {
	dono, err := r.unicidade.dono(ctx, chaveNumeroQuarto(numero))
	if err != nil {
		return false, err
	}
	return dono != "" && dono != idExcluir, nil
}

func toQuartoItem(d entities.QuartoData) quartoItem {
	camas := make([]camaItem, 0, len(d.Camas))
	for _, c := range d.Camas {
		camas = append(camas, camaItem{ID: c.ID, Tipo: string(c.Tipo)})
	}
	return quartoItem{
		ID:                d.ID,
		Numero:            d.Numero,
		Capacidade:        d.Capacidade,
		Tipo:              string(d.Tipo),
		PrecoPorDiaria:    floatToString(d.PrecoPorDiaria),
		TemFrigobar:       d.TemFrigobar,
		TemCafeDaManha:    d.TemCafeDaManha,
		TemArCondicionado: d.TemArCondicionado,
		TemTV:             d.TemTV,
		Disponibilidade:   string(d.Disponibilidade),
		Camas:             camas,
		CriadoEm:          timeToString(d.CriadoEm),
		AtualizadoEm:      timeToString(d.AtualizadoEm),
	}
}

func fromQuartoItem(it quartoItem) *entities.Quarto {
	camas := make([]entities.CamaData, 0, len(it.Camas))
	for _, c := range it.Camas {
		camas = append(camas, entities.CamaData{ID: c.ID, Tipo: entities.TipoCama(c.Tipo)})
	}
	return entities.QuartoFromData(entities.QuartoData{
		ID:                it.ID,
		Numero:            it.Numero,
		Capacidade:        it.Capacidade,
		Tipo:              entities.TipoQuarto(it.Tipo),
		PrecoPorDiaria:    stringToFloat(it.PrecoPorDiaria),
		TemFrigobar:       it.TemFrigobar,
		TemCafeDaManha:    it.TemCafeDaManha,
		TemArCondicionado: it.TemArCondicionado,
		TemTV:             it.TemTV,
		Disponibilidade:   entities.Disponibilidade(it.Disponibilidade),
		Camas:             camas,
		CriadoEm:          stringToTime(it.CriadoEm),
		AtualizadoEm:      stringToTime(it.AtualizadoEm),
	})
}

func fromQuartoItems(items []quartoItem) []*entities.Quarto {
	porCriacao(items, func(it quartoItem) string { return it.CriadoEm })
	out := make([]*entities.Quarto, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuartoItem(it))
	}
	return out
}
