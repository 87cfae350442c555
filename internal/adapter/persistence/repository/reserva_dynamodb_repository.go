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

const (
	ReservasQuartoIDIndex  = "quarto_id-index"
	ReservasHospedeIDIndex = "hospede_id-index"
)

type reservaItem struct {
	ID           string `dynamodbav:"id"`
	QuartoID     string `dynamodbav:"quarto_id"`
	HospedeID    string `dynamodbav:"hospede_id"`
	DataCheckIn  string `dynamodbav:"data_check_in"`
	DataCheckOut string `dynamodbav:"data_check_out"`
	Status       string `dynamodbav:"status"`
	ValorTotal   string `dynamodbav:"valor_total"`
	CriadoEm     string `dynamodbav:"criado_em"`
	AtualizadoEm string `dynamodbav:"atualizado_em"`
}

// ReservaDynamoRepository persists bookings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quarto_id-index (PK: quarto_id)
//   - GSI: hospede_id-index (PK: hospede_id)
//
// A booking in an active status (CONFIRMADA, EM_ANDAMENTO) holds a guard item
// for its room, so a room can never have two active bookings and the active
// check is a consistent read rather than a GSI query.
type ReservaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	unicidade unicidade
}

var _ interfaces.IReservaRepository = (*ReservaDynamoRepository)(nil)

func NewReservaDynamoRepository(ddb *dynamodb.Client, tableName, unicidadeTable string) *ReservaDynamoRepository {
	return &ReservaDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		unicidade: unicidade{ddb: ddb, tableName: unicidadeTable},
	}
}

func (r *ReservaDynamoRepository) Criar(ctx context.Context, res *entities.Reserva) (*entities.Reserva, error) {
	it := toReservaItem(res.ToData())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	itens := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	if entities.StatusReserva(it.Status).Ativa() {
		itens = append(itens, r.unicidade.reservar(chaveReservaAtiva(it.QuartoID), it.ID))
	}

	if err := r.gravar(ctx, it, itens); err != nil {
		return nil, err
	}
	return fromReservaItem(it), nil
}

func (r *ReservaDynamoRepository) BuscarPorID(ctx context.Context, id string) (*entities.Reserva, error) {
	var it reservaItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return nil, err
	}
	return fromReservaItem(it), nil
}

func (r *ReservaDynamoRepository) BuscarPorQuarto(ctx context.Context, quartoID string) ([]*entities.Reserva, error) {
	return r.porIndice(ctx, ReservasQuartoIDIndex, "quarto_id", quartoID)
}

func (r *ReservaDynamoRepository) BuscarPorHospede(ctx context.Context, hospedeID string) ([]*entities.Reserva, error) {
	return r.porIndice(ctx, ReservasHospedeIDIndex, "hospede_id", hospedeID)
}

func (r *ReservaDynamoRepository) porIndice(ctx context.Context, index, attr, value string) ([]*entities.Reserva, error) {
	items, err := queryAll[reservaItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromReservaItems(items), nil
}

func (r *ReservaDynamoRepository) BuscarAtivas(ctx context.Context) ([]*entities.Reserva, error) {
	items, err := scanAll[reservaItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("#status IN (:confirmada, :em_andamento)"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":confirmada":   &types.AttributeValueMemberS{Value: string(entities.StatusReservaConfirmada)},
			":em_andamento": &types.AttributeValueMemberS{Value: string(entities.StatusReservaEmAndamento)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromReservaItems(items), nil
}

func (r *ReservaDynamoRepository) BuscarTodas(ctx context.Context) ([]*entities.Reserva, error) {
	items, err := scanAll[reservaItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromReservaItems(items), nil
}

// Atualizar overwrites the booking and moves the room's active-booking guard
// when the booking enters or leaves an active status.
func (r *ReservaDynamoRepository) Atualizar(ctx context.Context, id string, res *entities.Reserva) (*entities.Reserva, error) {
	d := res.ToData()
	d.ID = id
	it := toReservaItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}

	var anterior reservaItem
	existia, err := getItem(ctx, r.ddb, r.tableName, id, &anterior)
	if err != nil {
		return nil, err
	}
	eraAtiva := existia && entities.StatusReserva(anterior.Status).Ativa()
	ativa := entities.StatusReserva(it.Status).Ativa()

	itens := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.tableName), Item: av}},
	}
	if ativa {
		itens = append(itens, r.unicidade.reservar(chaveReservaAtiva(it.QuartoID), id))
	}
	if eraAtiva && (!ativa || anterior.QuartoID != it.QuartoID) {
		itens = append(itens, r.unicidade.liberar(chaveReservaAtiva(anterior.QuartoID), id))
	}

	if err := r.gravar(ctx, it, itens); err != nil {
		return nil, err
	}
	return fromReservaItem(it), nil
}

func (r *ReservaDynamoRepository) Deletar(ctx context.Context, id string) error {
	var it reservaItem
	ok, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !ok {
		return err
	}
	itens := []types.TransactWriteItem{
		{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: idKey(id)}},
	}
	if entities.StatusReserva(it.Status).Ativa() {
		itens = append(itens, r.unicidade.liberar(chaveReservaAtiva(it.QuartoID), id))
	}
	return r.unicidade.transacao(ctx, itens...)
}

func (r *ReservaDynamoRepository) ExisteReservaAtivaQuarto(ctx context.Context, quartoID string) (bool, error) {
	dono, err := r.unicidade.dono(ctx, chaveReservaAtiva(quartoID))
	if err != nil {
		return false, err
	}
	return dono != "", nil
}

func (r *ReservaDynamoRepository) gravar(ctx context.Context, it reservaItem, itens []types.TransactWriteItem) error {
	err := r.unicidade.transacao(ctx, itens...)
	if condicaoFalhou(err) {
		log.Printf("[reservas][repository] quarto com reserva ativa quarto_id=%s id=%s", it.QuartoID, it.ID)
		return usecase.ErrQuartoComReservaAtiva
	}
	return err
}

func toReservaItem(d entities.ReservaData) reservaItem {
	return reservaItem{
		ID:           d.ID,
		QuartoID:     d.QuartoID,
		HospedeID:    d.HospedeID,
		DataCheckIn:  timeToString(d.DataCheckIn),
		DataCheckOut: timeToString(d.DataCheckOut),
		Status:       string(d.Status),
		ValorTotal:   floatToString(d.ValorTotal),
		CriadoEm:     timeToString(d.CriadoEm),
		AtualizadoEm: timeToString(d.AtualizadoEm),
	}
}

func fromReservaItem(it reservaItem) *entities.Reserva {
	return entities.ReservaFromData(entities.ReservaData{
		ID:           it.ID,
		QuartoID:     it.QuartoID,
		HospedeID:    it.HospedeID,
		DataCheckIn:  stringToTime(it.DataCheckIn),
		DataCheckOut: stringToTime(it.DataCheckOut),
		Status:       entities.StatusReserva(it.Status),
		ValorTotal:   stringToFloat(it.ValorTotal),
		CriadoEm:     stringToTime(it.CriadoEm),
		AtualizadoEm: stringToTime(it.AtualizadoEm),
	})
}

func fromReservaItems(items []reservaItem) []*entities.Reserva {
	porCriacao(items, func(it reservaItem) string { return it.CriadoEm })
	out := make([]*entities.Reserva, 0, len(items))
	for _, it := range items {
		out = append(out, fromReservaItem(it))
	}
	return out
}
