// Package meetapiconnect holds the Connect procedure names, handler
// constructors and clients of the meet services.
package meetapiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/pkg/meetapi"
)

// PackageName prefixes every service path.
const PackageName = "trackmeet.v1"

const (
	// RosterServiceName is the fully-qualified name of the RosterService.
	RosterServiceName = PackageName + ".RosterService"
	// HeatServiceName is the fully-qualified name of the HeatService.
	HeatServiceName = PackageName + ".HeatService"
	// FinalsServiceName is the fully-qualified name of the FinalsService.
	FinalsServiceName = PackageName + ".FinalsService"
	// StandingsServiceName is the fully-qualified name of the StandingsService.
	StandingsServiceName = PackageName + ".StandingsService"
	// ImportServiceName is the fully-qualified name of the ImportService.
	ImportServiceName = PackageName + ".ImportService"
	// SettingsServiceName is the fully-qualified name of the SettingsService.
	SettingsServiceName = PackageName + ".SettingsService"
)

// Procedure names, in the form "/<package>.<Service>/<Method>".
const (
	RosterServiceCreateSchoolProcedure            = "/" + RosterServiceName + "/CreateSchool"
	RosterServiceListSchoolsProcedure             = "/" + RosterServiceName + "/ListSchools"
	RosterServiceDeleteSchoolProcedure            = "/" + RosterServiceName + "/DeleteSchool"
	RosterServiceCreateAthleteProcedure           = "/" + RosterServiceName + "/CreateAthlete"
	RosterServiceUpdateAthleteProcedure           = "/" + RosterServiceName + "/UpdateAthlete"
	RosterServiceDeleteAthleteProcedure           = "/" + RosterServiceName + "/DeleteAthlete"
	RosterServiceListAthletesProcedure            = "/" + RosterServiceName + "/ListAthletes"
	RosterServiceCreateEventProcedure             = "/" + RosterServiceName + "/CreateEvent"
	RosterServiceListEventsProcedure              = "/" + RosterServiceName + "/ListEvents"
	RosterServiceDeleteEventProcedure             = "/" + RosterServiceName + "/DeleteEvent"
	RosterServiceInitializeRelayEventsProcedure   = "/" + RosterServiceName + "/InitializeRelayEvents"
	RosterServiceSetRelayEntriesProcedure         = "/" + RosterServiceName + "/SetRelayEntries"
	RosterServiceSaveRelayTeamProcedure           = "/" + RosterServiceName + "/SaveRelayTeam"
	RosterServiceListRelayTeamsProcedure          = "/" + RosterServiceName + "/ListRelayTeams"
	HeatServiceGenerateHeatsProcedure             = "/" + HeatServiceName + "/GenerateHeats"
	HeatServiceListHeatsProcedure                 = "/" + HeatServiceName + "/ListHeats"
	HeatServiceRecordHeatPositionProcedure        = "/" + HeatServiceName + "/RecordHeatPosition"
	HeatServiceAddEntrantProcedure                = "/" + HeatServiceName + "/AddEntrant"
	HeatServiceRemoveEntrantProcedure             = "/" + HeatServiceName + "/RemoveEntrant"
	FinalsServiceListFinalistsProcedure           = "/" + FinalsServiceName + "/ListFinalists"
	FinalsServiceSetFinalPositionProcedure        = "/" + FinalsServiceName + "/SetFinalPosition"
	FinalsServiceSchoolFinalistsReportProcedure   = "/" + FinalsServiceName + "/SchoolFinalistsReport"
	StandingsServiceGetTeamPointsProcedure        = "/" + StandingsServiceName + "/GetTeamPoints"
	ImportServiceImportIndividualEntriesProcedure = "/" + ImportServiceName + "/ImportIndividualEntries"
	ImportServiceImportRelayEntriesProcedure      = "/" + ImportServiceName + "/ImportRelayEntries"
	SettingsServiceBackupProcedure                = "/" + SettingsServiceName + "/Backup"
	SettingsServiceRestoreProcedure               = "/" + SettingsServiceName + "/Restore"
	SettingsServiceClearDataProcedure             = "/" + SettingsServiceName + "/ClearData"
	SettingsServiceGetMeetNameProcedure           = "/" + SettingsServiceName + "/GetMeetName"
	SettingsServiceSetMeetNameProcedure           = "/" + SettingsServiceName + "/SetMeetName"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{meetapi.WithCodec()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{meetapi.WithCodec()}, opts...)
}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(procedure+" is not implemented"))
}

// RosterServiceClient is a client for the RosterService, which manages schools, athletes, events and relay entries.
type RosterServiceClient interface {
	CreateSchool(context.Context, *connect.Request[meetapi.CreateSchoolRequest]) (*connect.Response[meetapi.CreateSchoolResponse], error)
	ListSchools(context.Context, *connect.Request[meetapi.ListSchoolsRequest]) (*connect.Response[meetapi.ListSchoolsResponse], error)
	DeleteSchool(context.Context, *connect.Request[meetapi.DeleteSchoolRequest]) (*connect.Response[meetapi.DeleteSchoolResponse], error)
	CreateAthlete(context.Context, *connect.Request[meetapi.CreateAthleteRequest]) (*connect.Response[meetapi.CreateAthleteResponse], error)
	UpdateAthlete(context.Context, *connect.Request[meetapi.UpdateAthleteRequest]) (*connect.Response[meetapi.UpdateAthleteResponse], error)
	DeleteAthlete(context.Context, *connect.Request[meetapi.DeleteAthleteRequest]) (*connect.Response[meetapi.DeleteAthleteResponse], error)
	ListAthletes(context.Context, *connect.Request[meetapi.ListAthletesRequest]) (*connect.Response[meetapi.ListAthletesResponse], error)
	CreateEvent(context.Context, *connect.Request[meetapi.CreateEventRequest]) (*connect.Response[meetapi.CreateEventResponse], error)
	ListEvents(context.Context, *connect.Request[meetapi.ListEventsRequest]) (*connect.Response[meetapi.ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[meetapi.DeleteEventRequest]) (*connect.Response[meetapi.DeleteEventResponse], error)
	InitializeRelayEvents(context.Context, *connect.Request[meetapi.InitializeRelayEventsRequest]) (*connect.Response[meetapi.InitializeRelayEventsResponse], error)
	SetRelayEntries(context.Context, *connect.Request[meetapi.SetRelayEntriesRequest]) (*connect.Response[meetapi.SetRelayEntriesResponse], error)
	SaveRelayTeam(context.Context, *connect.Request[meetapi.SaveRelayTeamRequest]) (*connect.Response[meetapi.SaveRelayTeamResponse], error)
	ListRelayTeams(context.Context, *connect.Request[meetapi.ListRelayTeamsRequest]) (*connect.Response[meetapi.ListRelayTeamsResponse], error)
}

// NewRosterServiceClient constructs a client for the RosterService. baseURL is the
// server address, for example http://localhost:8080.
func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RosterServiceClient {
	opts = clientOptions(opts)
	return &rosterServiceClient{
		createSchool:          connect.NewClient[meetapi.CreateSchoolRequest, meetapi.CreateSchoolResponse](httpClient, baseURL+RosterServiceCreateSchoolProcedure, opts...),
		listSchools:           connect.NewClient[meetapi.ListSchoolsRequest, meetapi.ListSchoolsResponse](httpClient, baseURL+RosterServiceListSchoolsProcedure, opts...),
		deleteSchool:          connect.NewClient[meetapi.DeleteSchoolRequest, meetapi.DeleteSchoolResponse](httpClient, baseURL+RosterServiceDeleteSchoolProcedure, opts...),
		createAthlete:         connect.NewClient[meetapi.CreateAthleteRequest, meetapi.CreateAthleteResponse](httpClient, baseURL+RosterServiceCreateAthleteProcedure, opts...),
		updateAthlete:         connect.NewClient[meetapi.UpdateAthleteRequest, meetapi.UpdateAthleteResponse](httpClient, baseURL+RosterServiceUpdateAthleteProcedure, opts...),
		deleteAthlete:         connect.NewClient[meetapi.DeleteAthleteRequest, meetapi.DeleteAthleteResponse](httpClient, baseURL+RosterServiceDeleteAthleteProcedure, opts...),
		listAthletes:          connect.NewClient[meetapi.ListAthletesRequest, meetapi.ListAthletesResponse](httpClient, baseURL+RosterServiceListAthletesProcedure, opts...),
		createEvent:           connect.NewClient[meetapi.CreateEventRequest, meetapi.CreateEventResponse](httpClient, baseURL+RosterServiceCreateEventProcedure, opts...),
		listEvents:            connect.NewClient[meetapi.ListEventsRequest, meetapi.ListEventsResponse](httpClient, baseURL+RosterServiceListEventsProcedure, opts...),
		deleteEvent:           connect.NewClient[meetapi.DeleteEventRequest, meetapi.DeleteEventResponse](httpClient, baseURL+RosterServiceDeleteEventProcedure, opts...),
		initializeRelayEvents: connect.NewClient[meetapi.InitializeRelayEventsRequest, meetapi.InitializeRelayEventsResponse](httpClient, baseURL+RosterServiceInitializeRelayEventsProcedure, opts...),
		setRelayEntries:       connect.NewClient[meetapi.SetRelayEntriesRequest, meetapi.SetRelayEntriesResponse](httpClient, baseURL+RosterServiceSetRelayEntriesProcedure, opts...),
		saveRelayTeam:         connect.NewClient[meetapi.SaveRelayTeamRequest, meetapi.SaveRelayTeamResponse](httpClient, baseURL+RosterServiceSaveRelayTeamProcedure, opts...),
		listRelayTeams:        connect.NewClient[meetapi.ListRelayTeamsRequest, meetapi.ListRelayTeamsResponse](httpClient, baseURL+RosterServiceListRelayTeamsProcedure, opts...),
	}
}

type rosterServiceClient struct {
	createSchool          *connect.Client[meetapi.CreateSchoolRequest, meetapi.CreateSchoolResponse]
	listSchools           *connect.Client[meetapi.ListSchoolsRequest, meetapi.ListSchoolsResponse]
	deleteSchool          *connect.Client[meetapi.DeleteSchoolRequest, meetapi.DeleteSchoolResponse]
	createAthlete         *connect.Client[meetapi.CreateAthleteRequest, meetapi.CreateAthleteResponse]
	updateAthlete         *connect.Client[meetapi.UpdateAthleteRequest, meetapi.UpdateAthleteResponse]
	deleteAthlete         *connect.Client[meetapi.DeleteAthleteRequest, meetapi.DeleteAthleteResponse]
	listAthletes          *connect.Client[meetapi.ListAthletesRequest, meetapi.ListAthletesResponse]
	createEvent           *connect.Client[meetapi.CreateEventRequest, meetapi.CreateEventResponse]
	listEvents            *connect.Client[meetapi.ListEventsRequest, meetapi.ListEventsResponse]
	deleteEvent           *connect.Client[meetapi.DeleteEventRequest, meetapi.DeleteEventResponse]
	initializeRelayEvents *connect.Client[meetapi.InitializeRelayEventsRequest, meetapi.InitializeRelayEventsResponse]
	setRelayEntries       *connect.Client[meetapi.SetRelayEntriesRequest, meetapi.SetRelayEntriesResponse]
	saveRelayTeam         *connect.Client[meetapi.SaveRelayTeamRequest, meetapi.SaveRelayTeamResponse]
	listRelayTeams        *connect.Client[meetapi.ListRelayTeamsRequest, meetapi.ListRelayTeamsResponse]
}

func (c *rosterServiceClient) CreateSchool(ctx context.Context, req *connect.Request[meetapi.CreateSchoolRequest]) (*connect.Response[meetapi.CreateSchoolResponse], error) {
	return c.createSchool.CallUnary(ctx, req)
}

func (c *rosterServiceClient) ListSchools(ctx context.Context, req *connect.Request[meetapi.ListSchoolsRequest]) (*connect.Response[meetapi.ListSchoolsResponse], error) {
	return c.listSchools.CallUnary(ctx, req)
}

func (c *rosterServiceClient) DeleteSchool(ctx context.Context, req *connect.Request[meetapi.DeleteSchoolRequest]) (*connect.Response[meetapi.DeleteSchoolResponse], error) {
	return c.deleteSchool.CallUnary(ctx, req)
}

func (c *rosterServiceClient) CreateAthlete(ctx context.Context, req *connect.Request[meetapi.CreateAthleteRequest]) (*connect.Response[meetapi.CreateAthleteResponse], error) {
	return c.createAthlete.CallUnary(ctx, req)
}

func (c *rosterServiceClient) UpdateAthlete(ctx context.Context, req *connect.Request[meetapi.UpdateAthleteRequest]) (*connect.Response[meetapi.UpdateAthleteResponse], error) {
	return c.updateAthlete.CallUnary(ctx, req)
}

func (c *rosterServiceClient) DeleteAthlete(ctx context.Context, req *connect.Request[meetapi.DeleteAthleteRequest]) (*connect.Response[meetapi.DeleteAthleteResponse], error) {
	return c.deleteAthlete.CallUnary(ctx, req)
}

func (c *rosterServiceClient) ListAthletes(ctx context.Context, req *connect.Request[meetapi.ListAthletesRequest]) (*connect.Response[meetapi.ListAthletesResponse], error) {
	return c.listAthletes.CallUnary(ctx, req)
}

func (c *rosterServiceClient) CreateEvent(ctx context.Context, req *connect.Request[meetapi.CreateEventRequest]) (*connect.Response[meetapi.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *rosterServiceClient) ListEvents(ctx context.Context, req *connect.Request[meetapi.ListEventsRequest]) (*connect.Response[meetapi.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *rosterServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[meetapi.DeleteEventRequest]) (*connect.Response[meetapi.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *rosterServiceClient) InitializeRelayEvents(ctx context.Context, req *connect.Request[meetapi.InitializeRelayEventsRequest]) (*connect.Response[meetapi.InitializeRelayEventsResponse], error) {
	return c.initializeRelayEvents.CallUnary(ctx, req)
}

func (c *rosterServiceClient) SetRelayEntries(ctx context.Context, req *connect.Request[meetapi.SetRelayEntriesRequest]) (*connect.Response[meetapi.SetRelayEntriesResponse], error) {
	return c.setRelayEntries.CallUnary(ctx, req)
}

func (c *rosterServiceClient) SaveRelayTeam(ctx context.Context, req *connect.Request[meetapi.SaveRelayTeamRequest]) (*connect.Response[meetapi.SaveRelayTeamResponse], error) {
	return c.saveRelayTeam.CallUnary(ctx, req)
}

func (c *rosterServiceClient) ListRelayTeams(ctx context.Context, req *connect.Request[meetapi.ListRelayTeamsRequest]) (*connect.Response[meetapi.ListRelayTeamsResponse], error) {
	return c.listRelayTeams.CallUnary(ctx, req)
}

// RosterServiceHandler is implemented by the server side of the RosterService.
type RosterServiceHandler interface {
	CreateSchool(context.Context, *connect.Request[meetapi.CreateSchoolRequest]) (*connect.Response[meetapi.CreateSchoolResponse], error)
	ListSchools(context.Context, *connect.Request[meetapi.ListSchoolsRequest]) (*connect.Response[meetapi.ListSchoolsResponse], error)
	DeleteSchool(context.Context, *connect.Request[meetapi.DeleteSchoolRequest]) (*connect.Response[meetapi.DeleteSchoolResponse], error)
	CreateAthlete(context.Context, *connect.Request[meetapi.CreateAthleteRequest]) (*connect.Response[meetapi.CreateAthleteResponse], error)
	UpdateAthlete(context.Context, *connect.Request[meetapi.UpdateAthleteRequest]) (*connect.Response[meetapi.UpdateAthleteResponse], error)
	DeleteAthlete(context.Context, *connect.Request[meetapi.DeleteAthleteRequest]) (*connect.Response[meetapi.DeleteAthleteResponse], error)
	ListAthletes(context.Context, *connect.Request[meetapi.ListAthletesRequest]) (*connect.Response[meetapi.ListAthletesResponse], error)
	CreateEvent(context.Context, *connect.Request[meetapi.CreateEventRequest]) (*connect.Response[meetapi.CreateEventResponse], error)
	ListEvents(context.Context, *connect.Request[meetapi.ListEventsRequest]) (*connect.Response[meetapi.ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[meetapi.DeleteEventRequest]) (*connect.Response[meetapi.DeleteEventResponse], error)
	InitializeRelayEvents(context.Context, *connect.Request[meetapi.InitializeRelayEventsRequest]) (*connect.Response[meetapi.InitializeRelayEventsResponse], error)
	SetRelayEntries(context.Context, *connect.Request[meetapi.SetRelayEntriesRequest]) (*connect.Response[meetapi.SetRelayEntriesResponse], error)
	SaveRelayTeam(context.Context, *connect.Request[meetapi.SaveRelayTeamRequest]) (*connect.Response[meetapi.SaveRelayTeamResponse], error)
	ListRelayTeams(context.Context, *connect.Request[meetapi.ListRelayTeamsRequest]) (*connect.Response[meetapi.ListRelayTeamsResponse], error)
}

// NewRosterServiceHandler builds an HTTP handler serving every RosterService procedure.
// It returns the path to mount the handler on.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		RosterServiceCreateSchoolProcedure:          connect.NewUnaryHandler(RosterServiceCreateSchoolProcedure, svc.CreateSchool, opts...),
		RosterServiceListSchoolsProcedure:           connect.NewUnaryHandler(RosterServiceListSchoolsProcedure, svc.ListSchools, opts...),
		RosterServiceDeleteSchoolProcedure:          connect.NewUnaryHandler(RosterServiceDeleteSchoolProcedure, svc.DeleteSchool, opts...),
		RosterServiceCreateAthleteProcedure:         connect.NewUnaryHandler(RosterServiceCreateAthleteProcedure, svc.CreateAthlete, opts...),
		RosterServiceUpdateAthleteProcedure:         connect.NewUnaryHandler(RosterServiceUpdateAthleteProcedure, svc.UpdateAthlete, opts...),
		RosterServiceDeleteAthleteProcedure:         connect.NewUnaryHandler(RosterServiceDeleteAthleteProcedure, svc.DeleteAthlete, opts...),
		RosterServiceListAthletesProcedure:          connect.NewUnaryHandler(RosterServiceListAthletesProcedure, svc.ListAthletes, opts...),
		RosterServiceCreateEventProcedure:           connect.NewUnaryHandler(RosterServiceCreateEventProcedure, svc.CreateEvent, opts...),
		RosterServiceListEventsProcedure:            connect.NewUnaryHandler(RosterServiceListEventsProcedure, svc.ListEvents, opts...),
		RosterServiceDeleteEventProcedure:           connect.NewUnaryHandler(RosterServiceDeleteEventProcedure, svc.DeleteEvent, opts...),
		RosterServiceInitializeRelayEventsProcedure: connect.NewUnaryHandler(RosterServiceInitializeRelayEventsProcedure, svc.InitializeRelayEvents, opts...),
		RosterServiceSetRelayEntriesProcedure:       connect.NewUnaryHandler(RosterServiceSetRelayEntriesProcedure, svc.SetRelayEntries, opts...),
		RosterServiceSaveRelayTeamProcedure:         connect.NewUnaryHandler(RosterServiceSaveRelayTeamProcedure, svc.SaveRelayTeam, opts...),
		RosterServiceListRelayTeamsProcedure:        connect.NewUnaryHandler(RosterServiceListRelayTeamsProcedure, svc.ListRelayTeams, opts...),
	}
	return "/" + RosterServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedRosterServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRosterServiceHandler struct{}

func (UnimplementedRosterServiceHandler) CreateSchool(context.Context, *connect.Request[meetapi.CreateSchoolRequest]) (*connect.Response[meetapi.CreateSchoolResponse], error) {
	return nil, unimplemented(RosterServiceCreateSchoolProcedure)
}

func (UnimplementedRosterServiceHandler) ListSchools(context.Context, *connect.Request[meetapi.ListSchoolsRequest]) (*connect.Response[meetapi.ListSchoolsResponse], error) {
	return nil, unimplemented(RosterServiceListSchoolsProcedure)
}

func (UnimplementedRosterServiceHandler) DeleteSchool(context.Context, *connect.Request[meetapi.DeleteSchoolRequest]) (*connect.Response[meetapi.DeleteSchoolResponse], error) {
	return nil, unimplemented(RosterServiceDeleteSchoolProcedure)
}

func (UnimplementedRosterServiceHandler) CreateAthlete(context.Context, *connect.Request[meetapi.CreateAthleteRequest]) (*connect.Response[meetapi.CreateAthleteResponse], error) {
	return nil, unimplemented(RosterServiceCreateAthleteProcedure)
}

func (UnimplementedRosterServiceHandler) UpdateAthlete(context.Context, *connect.Request[meetapi.UpdateAthleteRequest]) (*connect.Response[meetapi.UpdateAthleteResponse], error) {
	return nil, unimplemented(RosterServiceUpdateAthleteProcedure)
}

func (UnimplementedRosterServiceHandler) DeleteAthlete(context.Context, *connect.Request[meetapi.DeleteAthleteRequest]) (*connect.Response[meetapi.DeleteAthleteResponse], error) {
	return nil, unimplemented(RosterServiceDeleteAthleteProcedure)
}

func (UnimplementedRosterServiceHandler) ListAthletes(context.Context, *connect.Request[meetapi.ListAthletesRequest]) (*connect.Response[meetapi.ListAthletesResponse], error) {
	return nil, unimplemented(RosterServiceListAthletesProcedure)
}

func (UnimplementedRosterServiceHandler) CreateEvent(context.Context, *connect.Request[meetapi.CreateEventRequest]) (*connect.Response[meetapi.CreateEventResponse], error) {
	return nil, unimplemented(RosterServiceCreateEventProcedure)
}

func (UnimplementedRosterServiceHandler) ListEvents(context.Context, *connect.Request[meetapi.ListEventsRequest]) (*connect.Response[meetapi.ListEventsResponse], error) {
	return nil, unimplemented(RosterServiceListEventsProcedure)
}

func (UnimplementedRosterServiceHandler) DeleteEvent(context.Context, *connect.Request[meetapi.DeleteEventRequest]) (*connect.Response[meetapi.DeleteEventResponse], error) {
	return nil, unimplemented(RosterServiceDeleteEventProcedure)
}

func (UnimplementedRosterServiceHandler) InitializeRelayEvents(context.Context, *connect.Request[meetapi.InitializeRelayEventsRequest]) (*connect.Response[meetapi.InitializeRelayEventsResponse], error) {
	return nil, unimplemented(RosterServiceInitializeRelayEventsProcedure)
}

func (UnimplementedRosterServiceHandler) SetRelayEntries(context.Context, *connect.Request[meetapi.SetRelayEntriesRequest]) (*connect.Response[meetapi.SetRelayEntriesResponse], error) {
	return nil, unimplemented(RosterServiceSetRelayEntriesProcedure)
}

func (UnimplementedRosterServiceHandler) SaveRelayTeam(context.Context, *connect.Request[meetapi.SaveRelayTeamRequest]) (*connect.Response[meetapi.SaveRelayTeamResponse], error) {
	return nil, unimplemented(RosterServiceSaveRelayTeamProcedure)
}

func (UnimplementedRosterServiceHandler) ListRelayTeams(context.Context, *connect.Request[meetapi.ListRelayTeamsRequest]) (*connect.Response[meetapi.ListRelayTeamsResponse], error) {
	return nil, unimplemented(RosterServiceListRelayTeamsProcedure)
}

// HeatServiceClient is a client for the HeatService, which builds and edits qualifying heats.
type HeatServiceClient interface {
	GenerateHeats(context.Context, *connect.Request[meetapi.GenerateHeatsRequest]) (*connect.Response[meetapi.GenerateHeatsResponse], error)
	ListHeats(context.Context, *connect.Request[meetapi.ListHeatsRequest]) (*connect.Response[meetapi.ListHeatsResponse], error)
	RecordHeatPosition(context.Context, *connect.Request[meetapi.RecordHeatPositionRequest]) (*connect.Response[meetapi.RecordHeatPositionResponse], error)
	AddEntrant(context.Context, *connect.Request[meetapi.AddEntrantRequest]) (*connect.Response[meetapi.AddEntrantResponse], error)
	RemoveEntrant(context.Context, *connect.Request[meetapi.RemoveEntrantRequest]) (*connect.Response[meetapi.RemoveEntrantResponse], error)
}

// NewHeatServiceClient constructs a client for the HeatService. baseURL is the
// server address, for example http://localhost:8080.
func NewHeatServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HeatServiceClient {
	opts = clientOptions(opts)
	return &heatServiceClient{
		generateHeats:      connect.NewClient[meetapi.GenerateHeatsRequest, meetapi.GenerateHeatsResponse](httpClient, baseURL+HeatServiceGenerateHeatsProcedure, opts...),
		listHeats:          connect.NewClient[meetapi.ListHeatsRequest, meetapi.ListHeatsResponse](httpClient, baseURL+HeatServiceListHeatsProcedure, opts...),
		recordHeatPosition: connect.NewClient[meetapi.RecordHeatPositionRequest, meetapi.RecordHeatPositionResponse](httpClient, baseURL+HeatServiceRecordHeatPositionProcedure, opts...),
		addEntrant:         connect.NewClient[meetapi.AddEntrantRequest, meetapi.AddEntrantResponse](httpClient, baseURL+HeatServiceAddEntrantProcedure, opts...),
		removeEntrant:      connect.NewClient[meetapi.RemoveEntrantRequest, meetapi.RemoveEntrantResponse](httpClient, baseURL+HeatServiceRemoveEntrantProcedure, opts...),
	}
}

type heatServiceClient struct {
	generateHeats      *connect.Client[meetapi.GenerateHeatsRequest, meetapi.GenerateHeatsResponse]
	listHeats          *connect.Client[meetapi.ListHeatsRequest, meetapi.ListHeatsResponse]
	recordHeatPosition *connect.Client[meetapi.RecordHeatPositionRequest, meetapi.RecordHeatPositionResponse]
	addEntrant         *connect.Client[meetapi.AddEntrantRequest, meetapi.AddEntrantResponse]
	removeEntrant      *connect.Client[meetapi.RemoveEntrantRequest, meetapi.RemoveEntrantResponse]
}

func (c *heatServiceClient) GenerateHeats(ctx context.Context, req *connect.Request[meetapi.GenerateHeatsRequest]) (*connect.Response[meetapi.GenerateHeatsResponse], error) {
	return c.generateHeats.CallUnary(ctx, req)
}

func (c *heatServiceClient) ListHeats(ctx context.Context, req *connect.Request[meetapi.ListHeatsRequest]) (*connect.Response[meetapi.ListHeatsResponse], error) {
	return c.listHeats.CallUnary(ctx, req)
}

func (c *heatServiceClient) RecordHeatPosition(ctx context.Context, req *connect.Request[meetapi.RecordHeatPositionRequest]) (*connect.Response[meetapi.RecordHeatPositionResponse], error) {
	return c.recordHeatPosition.CallUnary(ctx, req)
}

func (c *heatServiceClient) AddEntrant(ctx context.Context, req *connect.Request[meetapi.AddEntrantRequest]) (*connect.Response[meetapi.AddEntrantResponse], error) {
	return c.addEntrant.CallUnary(ctx, req)
}

func (c *heatServiceClient) RemoveEntrant(ctx context.Context, req *connect.Request[meetapi.RemoveEntrantRequest]) (*connect.Response[meetapi.RemoveEntrantResponse], error) {
	return c.removeEntrant.CallUnary(ctx, req)
}

// HeatServiceHandler is implemented by the server side of the HeatService.
type HeatServiceHandler interface {
	GenerateHeats(context.Context, *connect.Request[meetapi.GenerateHeatsRequest]) (*connect.Response[meetapi.GenerateHeatsResponse], error)
	ListHeats(context.Context, *connect.Request[meetapi.ListHeatsRequest]) (*connect.Response[meetapi.ListHeatsResponse], error)
	RecordHeatPosition(context.Context, *connect.Request[meetapi.RecordHeatPositionRequest]) (*connect.Response[meetapi.RecordHeatPositionResponse], error)
	AddEntrant(context.Context, *connect.Request[meetapi.AddEntrantRequest]) (*connect.Response[meetapi.AddEntrantResponse], error)
	RemoveEntrant(context.Context, *connect.Request[meetapi.RemoveEntrantRequest]) (*connect.Response[meetapi.RemoveEntrantResponse], error)
}

// NewHeatServiceHandler builds an HTTP handler serving every HeatService procedure.
// It returns the path to mount the handler on.
func NewHeatServiceHandler(svc HeatServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		HeatServiceGenerateHeatsProcedure:      connect.NewUnaryHandler(HeatServiceGenerateHeatsProcedure, svc.GenerateHeats, opts...),
		HeatServiceListHeatsProcedure:          connect.NewUnaryHandler(HeatServiceListHeatsProcedure, svc.ListHeats, opts...),
		HeatServiceRecordHeatPositionProcedure: connect.NewUnaryHandler(HeatServiceRecordHeatPositionProcedure, svc.RecordHeatPosition, opts...),
		HeatServiceAddEntrantProcedure:         connect.NewUnaryHandler(HeatServiceAddEntrantProcedure, svc.AddEntrant, opts...),
		HeatServiceRemoveEntrantProcedure:      connect.NewUnaryHandler(HeatServiceRemoveEntrantProcedure, svc.RemoveEntrant, opts...),
	}
	return "/" + HeatServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedHeatServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedHeatServiceHandler struct{}

func (UnimplementedHeatServiceHandler) GenerateHeats(context.Context, *connect.Request[meetapi.GenerateHeatsRequest]) (*connect.Response[meetapi.GenerateHeatsResponse], error) {
	return nil, unimplemented(HeatServiceGenerateHeatsProcedure)
}

func (UnimplementedHeatServiceHandler) ListHeats(context.Context, *connect.Request[meetapi.ListHeatsRequest]) (*connect.Response[meetapi.ListHeatsResponse], error) {
	return nil, unimplemented(HeatServiceListHeatsProcedure)
}

func (UnimplementedHeatServiceHandler) RecordHeatPosition(context.Context, *connect.Request[meetapi.RecordHeatPositionRequest]) (*connect.Response[meetapi.RecordHeatPositionResponse], error) {
	return nil, unimplemented(HeatServiceRecordHeatPositionProcedure)
}

func (UnimplementedHeatServiceHandler) AddEntrant(context.Context, *connect.Request[meetapi.AddEntrantRequest]) (*connect.Response[meetapi.AddEntrantResponse], error) {
	return nil, unimplemented(HeatServiceAddEntrantProcedure)
}

func (UnimplementedHeatServiceHandler) RemoveEntrant(context.Context, *connect.Request[meetapi.RemoveEntrantRequest]) (*connect.Response[meetapi.RemoveEntrantResponse], error) {
	return nil, unimplemented(HeatServiceRemoveEntrantProcedure)
}

// FinalsServiceClient is a client for the FinalsService, which seeds finals and records final placings.
type FinalsServiceClient interface {
	ListFinalists(context.Context, *connect.Request[meetapi.ListFinalistsRequest]) (*connect.Response[meetapi.ListFinalistsResponse], error)
	SetFinalPosition(context.Context, *connect.Request[meetapi.SetFinalPositionRequest]) (*connect.Response[meetapi.SetFinalPositionResponse], error)
	SchoolFinalistsReport(context.Context, *connect.Request[meetapi.SchoolFinalistsReportRequest]) (*connect.Response[meetapi.SchoolFinalistsReportResponse], error)
}

// NewFinalsServiceClient constructs a client for the FinalsService. baseURL is the
// server address, for example http://localhost:8080.
func NewFinalsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FinalsServiceClient {
	opts = clientOptions(opts)
	return &finalsServiceClient{
		listFinalists:         connect.NewClient[meetapi.ListFinalistsRequest, meetapi.ListFinalistsResponse](httpClient, baseURL+FinalsServiceListFinalistsProcedure, opts...),
		setFinalPosition:      connect.NewClient[meetapi.SetFinalPositionRequest, meetapi.SetFinalPositionResponse](httpClient, baseURL+FinalsServiceSetFinalPositionProcedure, opts...),
		schoolFinalistsReport: connect.NewClient[meetapi.SchoolFinalistsReportRequest, meetapi.SchoolFinalistsReportResponse](httpClient, baseURL+FinalsServiceSchoolFinalistsReportProcedure, opts...),
	}
}

type finalsServiceClient struct {
	listFinalists         *connect.Client[meetapi.ListFinalistsRequest, meetapi.ListFinalistsResponse]
	setFinalPosition      *connect.Client[meetapi.SetFinalPositionRequest, meetapi.SetFinalPositionResponse]
	schoolFinalistsReport *connect.Client[meetapi.SchoolFinalistsReportRequest, meetapi.SchoolFinalistsReportResponse]
}

func (c *finalsServiceClient) ListFinalists(ctx context.Context, req *connect.Request[meetapi.ListFinalistsRequest]) (*connect.Response[meetapi.ListFinalistsResponse], error) {
	return c.listFinalists.CallUnary(ctx, req)
}

func (c *finalsServiceClient) SetFinalPosition(ctx context.Context, req *connect.Request[meetapi.SetFinalPositionRequest]) (*connect.Response[meetapi.SetFinalPositionResponse], error) {
	return c.setFinalPosition.CallUnary(ctx, req)
}

func (c *finalsServiceClient) SchoolFinalistsReport(ctx context.Context, req *connect.Request[meetapi.SchoolFinalistsReportRequest]) (*connect.Response[meetapi.SchoolFinalistsReportResponse], error) {
	return c.schoolFinalistsReport.CallUnary(ctx, req)
}

// FinalsServiceHandler is implemented by the server side of the FinalsService.
type FinalsServiceHandler interface {
	ListFinalists(context.Context, *connect.Request[meetapi.ListFinalistsRequest]) (*connect.Response[meetapi.ListFinalistsResponse], error)
	SetFinalPosition(context.Context, *connect.Request[meetapi.SetFinalPositionRequest]) (*connect.Response[meetapi.SetFinalPositionResponse], error)
	SchoolFinalistsReport(context.Context, *connect.Request[meetapi.SchoolFinalistsReportRequest]) (*connect.Response[meetapi.SchoolFinalistsReportResponse], error)
}

// NewFinalsServiceHandler builds an HTTP handler serving every FinalsService procedure.
// It returns the path to mount the handler on.
func NewFinalsServiceHandler(svc FinalsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		FinalsServiceListFinalistsProcedure:         connect.NewUnaryHandler(FinalsServiceListFinalistsProcedure, svc.ListFinalists, opts...),
		FinalsServiceSetFinalPositionProcedure:      connect.NewUnaryHandler(FinalsServiceSetFinalPositionProcedure, svc.SetFinalPosition, opts...),
		FinalsServiceSchoolFinalistsReportProcedure: connect.NewUnaryHandler(FinalsServiceSchoolFinalistsReportProcedure, svc.SchoolFinalistsReport, opts...),
	}
	return "/" + FinalsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedFinalsServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedFinalsServiceHandler struct{}

func (UnimplementedFinalsServiceHandler) ListFinalists(context.Context, *connect.Request[meetapi.ListFinalistsRequest]) (*connect.Response[meetapi.ListFinalistsResponse], error) {
	return nil, unimplemented(FinalsServiceListFinalistsProcedure)
}

func (UnimplementedFinalsServiceHandler) SetFinalPosition(context.Context, *connect.Request[meetapi.SetFinalPositionRequest]) (*connect.Response[meetapi.SetFinalPositionResponse], error) {
	return nil, unimplemented(FinalsServiceSetFinalPositionProcedure)
}

func (UnimplementedFinalsServiceHandler) SchoolFinalistsReport(context.Context, *connect.Request[meetapi.SchoolFinalistsReportRequest]) (*connect.Response[meetapi.SchoolFinalistsReportResponse], error) {
	return nil, unimplemented(FinalsServiceSchoolFinalistsReportProcedure)
}

// StandingsServiceClient is a client for the StandingsService, which reports team points.
type StandingsServiceClient interface {
	GetTeamPoints(context.Context, *connect.Request[meetapi.GetTeamPointsRequest]) (*connect.Response[meetapi.GetTeamPointsResponse], error)
}

// NewStandingsServiceClient constructs a client for the StandingsService. baseURL is the
// server address, for example http://localhost:8080.
func NewStandingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StandingsServiceClient {
	opts = clientOptions(opts)
	return &standingsServiceClient{
		getTeamPoints: connect.NewClient[meetapi.GetTeamPointsRequest, meetapi.GetTeamPointsResponse](httpClient, baseURL+StandingsServiceGetTeamPointsProcedure, opts...),
	}
}

type standingsServiceClient struct {
	getTeamPoints *connect.Client[meetapi.GetTeamPointsRequest, meetapi.GetTeamPointsResponse]
}

func (c *standingsServiceClient) GetTeamPoints(ctx context.Context, req *connect.Request[meetapi.GetTeamPointsRequest]) (*connect.Response[meetapi.GetTeamPointsResponse], error) {
	return c.getTeamPoints.CallUnary(ctx, req)
}

// StandingsServiceHandler is implemented by the server side of the StandingsService.
type StandingsServiceHandler interface {
	GetTeamPoints(context.Context, *connect.Request[meetapi.GetTeamPointsRequest]) (*connect.Response[meetapi.GetTeamPointsResponse], error)
}

// NewStandingsServiceHandler builds an HTTP handler serving every StandingsService procedure.
// It returns the path to mount the handler on.
func NewStandingsServiceHandler(svc StandingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		StandingsServiceGetTeamPointsProcedure: connect.NewUnaryHandler(StandingsServiceGetTeamPointsProcedure, svc.GetTeamPoints, opts...),
	}
	return "/" + StandingsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedStandingsServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedStandingsServiceHandler struct{}

func (UnimplementedStandingsServiceHandler) GetTeamPoints(context.Context, *connect.Request[meetapi.GetTeamPointsRequest]) (*connect.Response[meetapi.GetTeamPointsResponse], error) {
	return nil, unimplemented(StandingsServiceGetTeamPointsProcedure)
}

// ImportServiceClient is a client for the ImportService, which ingests entry sheets.
type ImportServiceClient interface {
	ImportIndividualEntries(context.Context, *connect.Request[meetapi.ImportIndividualEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error)
	ImportRelayEntries(context.Context, *connect.Request[meetapi.ImportRelayEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error)
}

// NewImportServiceClient constructs a client for the ImportService. baseURL is the
// server address, for example http://localhost:8080.
func NewImportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ImportServiceClient {
	opts = clientOptions(opts)
	return &importServiceClient{
		importIndividualEntries: connect.NewClient[meetapi.ImportIndividualEntriesRequest, meetapi.ImportResponse](httpClient, baseURL+ImportServiceImportIndividualEntriesProcedure, opts...),
		importRelayEntries:      connect.NewClient[meetapi.ImportRelayEntriesRequest, meetapi.ImportResponse](httpClient, baseURL+ImportServiceImportRelayEntriesProcedure, opts...),
	}
}

type importServiceClient struct {
	importIndividualEntries *connect.Client[meetapi.ImportIndividualEntriesRequest, meetapi.ImportResponse]
	importRelayEntries      *connect.Client[meetapi.ImportRelayEntriesRequest, meetapi.ImportResponse]
}

func (c *importServiceClient) ImportIndividualEntries(ctx context.Context, req *connect.Request[meetapi.ImportIndividualEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	return c.importIndividualEntries.CallUnary(ctx, req)
}

func (c *importServiceClient) ImportRelayEntries(ctx context.Context, req *connect.Request[meetapi.ImportRelayEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	return c.importRelayEntries.CallUnary(ctx, req)
}

// ImportServiceHandler is implemented by the server side of the ImportService.
type ImportServiceHandler interface {
	ImportIndividualEntries(context.Context, *connect.Request[meetapi.ImportIndividualEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error)
	ImportRelayEntries(context.Context, *connect.Request[meetapi.ImportRelayEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error)
}

// NewImportServiceHandler builds an HTTP handler serving every ImportService procedure.
// It returns the path to mount the handler on.
func NewImportServiceHandler(svc ImportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		ImportServiceImportIndividualEntriesProcedure: connect.NewUnaryHandler(ImportServiceImportIndividualEntriesProcedure, svc.ImportIndividualEntries, opts...),
		ImportServiceImportRelayEntriesProcedure:      connect.NewUnaryHandler(ImportServiceImportRelayEntriesProcedure, svc.ImportRelayEntries, opts...),
	}
	return "/" + ImportServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedImportServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedImportServiceHandler struct{}

func (UnimplementedImportServiceHandler) ImportIndividualEntries(context.Context, *connect.Request[meetapi.ImportIndividualEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	return nil, unimplemented(ImportServiceImportIndividualEntriesProcedure)
}

func (UnimplementedImportServiceHandler) ImportRelayEntries(context.Context, *connect.Request[meetapi.ImportRelayEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	return nil, unimplemented(ImportServiceImportRelayEntriesProcedure)
}

// SettingsServiceClient is a client for the SettingsService, which covers meet-wide settings, backup and restore.
type SettingsServiceClient interface {
	Backup(context.Context, *connect.Request[meetapi.BackupRequest]) (*connect.Response[meetapi.BackupResponse], error)
	Restore(context.Context, *connect.Request[meetapi.RestoreRequest]) (*connect.Response[meetapi.RestoreResponse], error)
	ClearData(context.Context, *connect.Request[meetapi.ClearDataRequest]) (*connect.Response[meetapi.ClearDataResponse], error)
	GetMeetName(context.Context, *connect.Request[meetapi.GetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error)
	SetMeetName(context.Context, *connect.Request[meetapi.SetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error)
}

// NewSettingsServiceClient constructs a client for the SettingsService. baseURL is the
// server address, for example http://localhost:8080.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	opts = clientOptions(opts)
	return &settingsServiceClient{
		backup:      connect.NewClient[meetapi.BackupRequest, meetapi.BackupResponse](httpClient, baseURL+SettingsServiceBackupProcedure, opts...),
		restore:     connect.NewClient[meetapi.RestoreRequest, meetapi.RestoreResponse](httpClient, baseURL+SettingsServiceRestoreProcedure, opts...),
		clearData:   connect.NewClient[meetapi.ClearDataRequest, meetapi.ClearDataResponse](httpClient, baseURL+SettingsServiceClearDataProcedure, opts...),
		getMeetName: connect.NewClient[meetapi.GetMeetNameRequest, meetapi.MeetNameResponse](httpClient, baseURL+SettingsServiceGetMeetNameProcedure, opts...),
		setMeetName: connect.NewClient[meetapi.SetMeetNameRequest, meetapi.MeetNameResponse](httpClient, baseURL+SettingsServiceSetMeetNameProcedure, opts...),
	}
}

type settingsServiceClient struct {
	backup      *connect.Client[meetapi.BackupRequest, meetapi.BackupResponse]
	restore     *connect.Client[meetapi.RestoreRequest, meetapi.RestoreResponse]
	clearData   *connect.Client[meetapi.ClearDataRequest, meetapi.ClearDataResponse]
	getMeetName *connect.Client[meetapi.GetMeetNameRequest, meetapi.MeetNameResponse]
	setMeetName *connect.Client[meetapi.SetMeetNameRequest, meetapi.MeetNameResponse]
}

func (c *settingsServiceClient) Backup(ctx context.Context, req *connect.Request[meetapi.BackupRequest]) (*connect.Response[meetapi.BackupResponse], error) {
	return c.backup.CallUnary(ctx, req)
}

func (c *settingsServiceClient) Restore(ctx context.Context, req *connect.Request[meetapi.RestoreRequest]) (*connect.Response[meetapi.RestoreResponse], error) {
	return c.restore.CallUnary(ctx, req)
}

func (c *settingsServiceClient) ClearData(ctx context.Context, req *connect.Request[meetapi.ClearDataRequest]) (*connect.Response[meetapi.ClearDataResponse], error) {
	return c.clearData.CallUnary(ctx, req)
}

func (c *settingsServiceClient) GetMeetName(ctx context.Context, req *connect.Request[meetapi.GetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	return c.getMeetName.CallUnary(ctx, req)
}

func (c *settingsServiceClient) SetMeetName(ctx context.Context, req *connect.Request[meetapi.SetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	return c.setMeetName.CallUnary(ctx, req)
}

// SettingsServiceHandler is implemented by the server side of the SettingsService.
type SettingsServiceHandler interface {
	Backup(context.Context, *connect.Request[meetapi.BackupRequest]) (*connect.Response[meetapi.BackupResponse], error)
	Restore(context.Context, *connect.Request[meetapi.RestoreRequest]) (*connect.Response[meetapi.RestoreResponse], error)
	ClearData(context.Context, *connect.Request[meetapi.ClearDataRequest]) (*connect.Response[meetapi.ClearDataResponse], error)
	GetMeetName(context.Context, *connect.Request[meetapi.GetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error)
	SetMeetName(context.Context, *connect.Request[meetapi.SetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler serving every SettingsService procedure.
// It returns the path to mount the handler on.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		SettingsServiceBackupProcedure:      connect.NewUnaryHandler(SettingsServiceBackupProcedure, svc.Backup, opts...),
		SettingsServiceRestoreProcedure:     connect.NewUnaryHandler(SettingsServiceRestoreProcedure, svc.Restore, opts...),
		SettingsServiceClearDataProcedure:   connect.NewUnaryHandler(SettingsServiceClearDataProcedure, svc.ClearData, opts...),
		SettingsServiceGetMeetNameProcedure: connect.NewUnaryHandler(SettingsServiceGetMeetNameProcedure, svc.GetMeetName, opts...),
		SettingsServiceSetMeetNameProcedure: connect.NewUnaryHandler(SettingsServiceSetMeetNameProcedure, svc.SetMeetName, opts...),
	}
	return "/" + SettingsServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// UnimplementedSettingsServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettingsServiceHandler struct{}

func (UnimplementedSettingsServiceHandler) Backup(context.Context, *connect.Request[meetapi.BackupRequest]) (*connect.Response[meetapi.BackupResponse], error) {
	return nil, unimplemented(SettingsServiceBackupProcedure)
}

func (UnimplementedSettingsServiceHandler) Restore(context.Context, *connect.Request[meetapi.RestoreRequest]) (*connect.Response[meetapi.RestoreResponse], error) {
	return nil, unimplemented(SettingsServiceRestoreProcedure)
}

func (UnimplementedSettingsServiceHandler) ClearData(context.Context, *connect.Request[meetapi.ClearDataRequest]) (*connect.Response[meetapi.ClearDataResponse], error) {
	return nil, unimplemented(SettingsServiceClearDataProcedure)
}

func (UnimplementedSettingsServiceHandler) GetMeetName(context.Context, *connect.Request[meetapi.GetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	return nil, unimplemented(SettingsServiceGetMeetNameProcedure)
}

func (UnimplementedSettingsServiceHandler) SetMeetName(context.Context, *connect.Request[meetapi.SetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	return nil, unimplemented(SettingsServiceSetMeetNameProcedure)
}
