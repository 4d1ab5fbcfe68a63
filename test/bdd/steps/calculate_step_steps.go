package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/kinestep/internal/adapters/metrics"
	appKinematics "github.com/andrescamacho/kinestep/internal/application/kinematics"
	"github.com/andrescamacho/kinestep/internal/application/kinematics/types"
	"github.com/andrescamacho/kinestep/internal/application/logging"
	"github.com/andrescamacho/kinestep/internal/application/mediator"
	"github.com/andrescamacho/kinestep/internal/domain/kinematics"
	"github.com/andrescamacho/kinestep/test/helpers"
)

type calculateStepContext struct {
	mediator mediator.Mediator
	logger   *helpers.MockLogger
	recorder *helpers.MockMetricsRecorder
	response *types.CalculateStepResponse
	valid    *types.ValidateInputResponse
	err      error
}

func (cc *calculateStepContext) reset() {
	cc.mediator = nil
	cc.logger = helpers.NewMockLogger()
	cc.recorder = nil
	cc.response = nil
	cc.valid = nil
	cc.err = nil
}

func (cc *calculateStepContext) ctx() context.Context {
	return logging.WithLogger(context.Background(), cc.logger)
}

func (cc *calculateStepContext) theKinematicsHandlersAreRegistered() error {
	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware)
	calculator := kinematics.NewKinematicsCalculator(nil)
	if err := appKinematics.RegisterHandlers(m, calculator); err != nil {
		return err
	}
	cc.mediator = m
	cc.recorder = helpers.NewMockMetricsRecorder()
	return nil
}

func (cc *calculateStepContext) iSendACalculateStepCommandWithRequestID(requestID string) error {
	resp, err := cc.mediator.Send(cc.ctx(), &types.CalculateStepCommand{
		Input:     sharedInput,
		RequestID: requestID,
	})
	cc.err = err
	if err != nil {
		return nil
	}
	typed, ok := resp.(*types.CalculateStepResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}
	cc.response = typed
	return nil
}

func (cc *calculateStepContext) iSendACalculateStepCommand() error {
	return cc.iSendACalculateStepCommandWithRequestID("")
}

func (cc *calculateStepContext) iSendAValidateInputQuery() error {
	resp, err := cc.mediator.Send(cc.ctx(), &types.ValidateInputQuery{Input: sharedInput})
	if err != nil {
		return err
	}
	typed, ok := resp.(*types.ValidateInputResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}
	cc.valid = typed
	return nil
}

func (cc *calculateStepContext) theCommandShouldSucceed() error {
	if cc.err != nil {
		return fmt.Errorf("expected command to succeed, got %v", cc.err)
	}
	if cc.response == nil || cc.response.Result == nil {
		return fmt.Errorf("expected a calculation result")
	}
	return nil
}

func (cc *calculateStepContext) theCommandShouldFailWith(code string) error {
	if cc.err == nil {
		return fmt.Errorf("expected command to fail with %s", code)
	}
	if got := string(kinematics.CodeOf(cc.err)); got != code {
		return fmt.Errorf("expected error code %s, got %s (%v)", code, got, cc.err)
	}
	return nil
}

func (cc *calculateStepContext) theResponseShouldCarryRequestID(requestID string) error {
	if cc.response == nil {
		return fmt.Errorf("no response (error: %v)", cc.err)
	}
	if cc.response.RequestID != requestID {
		return fmt.Errorf("expected request id %q, got %q", requestID, cc.response.RequestID)
	}
	return nil
}

func (cc *calculateStepContext) theResponseShouldCarryAGeneratedRequestID() error {
	if cc.response == nil {
		return fmt.Errorf("no response (error: %v)", cc.err)
	}
	if len(cc.response.RequestID) != 36 {
		return fmt.Errorf("expected a generated uuid request id, got %q", cc.response.RequestID)
	}
	return nil
}

func (cc *calculateStepContext) theInputShouldBeReportedValid() error {
	if cc.valid == nil || !cc.valid.Valid {
		return fmt.Errorf("expected input to be valid, got %+v", cc.valid)
	}
	return nil
}

func (cc *calculateStepContext) theInputShouldBeReportedInvalidWith(code string) error {
	if cc.valid == nil || cc.valid.Valid {
		return fmt.Errorf("expected input to be invalid, got %+v", cc.valid)
	}
	if got := string(kinematics.CodeOf(cc.valid.Err)); got != code {
		return fmt.Errorf("expected error code %s, got %s", code, got)
	}
	return nil
}

func (cc *calculateStepContext) aCalculationShouldBeRecordedWithOutcome(outcome string) error {
	for _, c := range cc.recorder.Calculations {
		if string(c.Outcome) == outcome {
			return nil
		}
	}
	return fmt.Errorf("no calculation recorded with outcome %s: %+v", outcome, cc.recorder.Calculations)
}

func (cc *calculateStepContext) aValidationFailureShouldBeRecordedFor(code, field string) error {
	for _, f := range cc.recorder.ValidationFailures {
		if f.Code == code && f.Field == field {
			return nil
		}
	}
	return fmt.Errorf("no validation failure %s/%s recorded: %+v", code, field, cc.recorder.ValidationFailures)
}

func (cc *calculateStepContext) noValidationFailureShouldBeRecorded() error {
	if n := len(cc.recorder.ValidationFailures); n != 0 {
		return fmt.Errorf("expected no validation failures, got %d", n)
	}
	return nil
}

func (cc *calculateStepContext) aLogEntryShouldBeWrittenAt(message, level string) error {
	entry := cc.logger.FindByMessage(message)
	if entry == nil {
		return fmt.Errorf("no log entry %q in %+v", message, cc.logger.Entries)
	}
	if entry.Level != level {
		return fmt.Errorf("expected %q at %s, got %s", message, level, entry.Level)
	}
	return nil
}

func InitializeCalculateStepScenario(ctx *godog.ScenarioContext) {
	cc := &calculateStepContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		metrics.SetGlobalCalculationCollector(nil)
		return ctx, nil
	})

	ctx.Step(`^the kinematics handlers are registered$`, cc.theKinematicsHandlersAreRegistered)
	ctx.Step(`^I send a calculate step command$`, cc.iSendACalculateStepCommand)
	ctx.Step(`^I send a calculate step command with request id "([^"]*)"$`, cc.iSendACalculateStepCommandWithRequestID)
	ctx.Step(`^I send a validate input query$`, cc.iSendAValidateInputQuery)
	ctx.Step(`^the command should succeed$`, cc.theCommandShouldSucceed)
	ctx.Step(`^the command should fail with ([A-Z_]+)$`, cc.theCommandShouldFailWith)
	ctx.Step(`^the response should carry request id "([^"]*)"$`, cc.theResponseShouldCarryRequestID)
	ctx.Step(`^the response should carry a generated request id$`, cc.theResponseShouldCarryAGeneratedRequestID)
	ctx.Step(`^the input should be reported valid$`, cc.theInputShouldBeReportedValid)
	ctx.Step(`^the input should be reported invalid with ([A-Z_]+)$`, cc.theInputShouldBeReportedInvalidWith)
	ctx.Step(`^a calculation should be recorded with outcome "([^"]*)"$`, cc.aCalculationShouldBeRecordedWithOutcome)
	ctx.Step(`^a validation failure should be recorded for ([A-Z_]+) on "([^"]*)"$`, cc.aValidationFailureShouldBeRecordedFor)
	ctx.Step(`^no validation failure should be recorded$`, cc.noValidationFailureShouldBeRecorded)
	ctx.Step(`^a log entry "([^"]*)" should be written at ([A-Z]+)$`, cc.aLogEntryShouldBeWrittenAt)
}
